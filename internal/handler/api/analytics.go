package api

import (
	"net/http"

	resdto "mealpass-api/internal/handler/dto/response"
	"mealpass-api/internal/handler/httperr"
	"mealpass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q queries.AnalyticsQueries
}

func NewAnalyticsHandler(q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{q: q}
}

// @Summary Department analytics
// @Description Per-department coupon totals and claim rates
// @Tags analytics
// @Produce json
// @Success 200 {array} resdto.DepartmentAnalyticsResponse
// @Failure 500 {object} map[string]string
// @Router /analytics/departments [get]
func (h *AnalyticsHandler) Departments(c *gin.Context) {
	stats, err := h.q.Departments(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load department analytics", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDepartmentAnalyticsList(stats))
}

// @Summary Top performers
// @Description Employees ranked by claimed coupons
// @Tags analytics
// @Produce json
// @Success 200 {array} resdto.EmployeePerformanceResponse
// @Failure 500 {object} map[string]string
// @Router /analytics/top-performers [get]
func (h *AnalyticsHandler) TopPerformers(c *gin.Context) {
	performers, err := h.q.TopPerformers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load top performers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEmployeePerformanceList(performers))
}

// @Summary Summary counts
// @Description Totals for employees, coupons, and claimed coupons
// @Tags analytics
// @Produce json
// @Success 200 {object} resdto.SummaryResponse
// @Failure 500 {object} map[string]string
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load summary", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}
