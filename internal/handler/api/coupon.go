package api

import (
	"errors"
	"net/http"
	"strconv"

	"mealpass-api/internal/domain/coupon"
	reqdto "mealpass-api/internal/handler/dto/request"
	resdto "mealpass-api/internal/handler/dto/response"
	"mealpass-api/internal/handler/httperr"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	gen   commands.GenerationCommands
	claim commands.ClaimCommands
	q     queries.CouponQueries
}

func NewCouponHandler(gen commands.GenerationCommands, claim commands.ClaimCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{gen: gen, claim: claim, q: q}
}

// @Summary Generate coupons
// @Description Generate one coupon per working day of the month for an employee
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateCouponsRequest true "Generate coupons request"
// @Success 201 {object} resdto.GenerateCouponsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/generate [post]
func (h *CouponHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.gen.GenerateForEmployee(c.Request.Context(), req.EmployeeID, req.Month, req.Year)
	if err != nil {
		h.abortGenerateError(c, err)
		return
	}
	resp := &resdto.GenerateCouponsResponse{
		EmployeeID: result.EmployeeID.String(),
		Created:    result.Created,
	}
	if result.SampleCoupon != nil {
		resp.Sample = resdto.FromCouponSnapshot(result.SampleCoupon)
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Generate coupons for all employees
// @Description Generate working-day coupons for every employee, skipping those already covered
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateAllCouponsRequest true "Generate all coupons request"
// @Success 201 {object} resdto.GenerateAllCouponsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/generate-all [post]
func (h *CouponHandler) GenerateAll(c *gin.Context) {
	var req reqdto.GenerateAllCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.gen.GenerateForAll(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		h.abortGenerateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, &resdto.GenerateAllCouponsResponse{
		TotalCreated: result.TotalCreated,
		Processed:    result.Processed,
		Skipped:      result.Skipped,
	})
}

func (h *CouponHandler) abortGenerateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month or year", nil)
	case errors.Is(err, errs.ErrEmployeeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Employee not found", nil)
	case errors.Is(err, errs.ErrNoEmployees):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No employees found", nil)
	case errors.Is(err, errs.ErrCouponsAlreadyExist):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupons already exist for this period", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Coupon generation failed", nil)
	}
}

// @Summary Claim coupon
// @Description Claim a coupon; each coupon can be claimed exactly once and only until its date passes
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.ClaimedCouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{id}/claim [post]
func (h *CouponHandler) Claim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.claim.Claim(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, coupon.ErrAlreadyClaimed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already claimed", nil)
		case errors.Is(err, coupon.ErrExpired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon has expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Claim failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimedCoupon(result.Coupon))
}

// @Summary Get coupon
// @Description Get a coupon by ID
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	rm, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(rm))
}

// @Summary Scan coupon by barcode
// @Description Look up a coupon and its employee by barcode value
// @Tags coupons
// @Produce json
// @Param barcode path string true "Barcode value"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} map[string]string
// @Router /coupons/barcode/{barcode} [get]
func (h *CouponHandler) GetByBarcode(c *gin.Context) {
	rm, err := h.q.GetByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(rm))
}

// @Summary List employee coupons
// @Description List an employee's coupons for a month with a status breakdown
// @Tags coupons
// @Produce json
// @Param id path string true "Employee ID"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} resdto.CouponListResponse
// @Failure 400 {object} map[string]string
// @Router /employees/{id}/coupons [get]
func (h *CouponHandler) ListForEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid employee id", nil)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidPeriod, "Invalid month", nil)
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidPeriod, "Invalid year", nil)
		return
	}
	result, err := h.q.ListForEmployeeMonth(c.Request.Context(), employeeID, month, year)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list coupons", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponListResult(result))
}

// @Summary Expiring coupons
// @Description List unclaimed coupons whose date falls within the next 24 hours
// @Tags coupons
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Failure 500 {object} map[string]string
// @Router /coupons/expiring [get]
func (h *CouponHandler) ExpiringSoon(c *gin.Context) {
	coupons, err := h.q.ExpiringSoon(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list expiring coupons", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(coupons))
}

// @Summary Dashboard statistics
// @Description Aggregate coupon statistics with the most recent claims
// @Tags coupons
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Failure 500 {object} map[string]string
// @Router /dashboard [get]
func (h *CouponHandler) Dashboard(c *gin.Context) {
	view, err := h.q.Dashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load dashboard", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(view))
}
