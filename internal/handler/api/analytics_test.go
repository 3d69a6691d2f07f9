//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"mealpass-api/internal/handler/api"
	resdto "mealpass-api/internal/handler/dto/response"
	"mealpass-api/internal/usecase/readmodel"
	"mealpass-api/tests/common/httptest"
	queriesmock "mealpass-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockQ    *queriesmock.MockAnalyticsQueries
	handler  *api.AnalyticsHandler
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQ = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	s.handler = api.NewAnalyticsHandler(s.mockQ)

	s.router.GET("/analytics/departments", s.handler.Departments)
	s.router.GET("/analytics/top-performers", s.handler.TopPerformers)
	s.router.GET("/analytics/summary", s.handler.Summary)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) TestDepartments() {
	s.Run("success: returns 200 with per-department rates", func() {
		stats := []readmodel.DepartmentAnalyticsRM{
			{Department: "Engineering", TotalCoupons: 30, ClaimedCoupons: 10, ClaimRate: 33.3},
			{Department: "Sales", TotalCoupons: 20, ClaimedCoupons: 18, ClaimRate: 90.0},
		}
		s.mockQ.EXPECT().Departments(gomock.Any()).Return(stats, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/departments", nil)

		s.Equal(http.StatusOK, rec.Code)
		var resp []resdto.DepartmentAnalyticsResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Require().Len(resp, 2)
		s.Equal("Engineering", resp[0].Department)
		s.InDelta(33.3, resp[0].ClaimRate, 0.01)
	})

	s.Run("store failure returns 500", func() {
		s.mockQ.EXPECT().Departments(gomock.Any()).Return(nil, errors.New("boom")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/departments", nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AnalyticsHandlerTestSuite) TestTopPerformers() {
	s.Run("success: returns 200 ordered by claims", func() {
		last := time.Now()
		performers := []readmodel.EmployeePerformanceRM{
			{
				EmployeeID:   uuid.New(),
				FirstName:    "Maria",
				LastName:     "Santos",
				Department:   "Engineering",
				Email:        "maria.santos@example.com",
				TotalCoupons: 20,
				TotalClaimed: 18,
				LastClaimed:  &last,
			},
		}
		s.mockQ.EXPECT().TopPerformers(gomock.Any()).Return(performers, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/top-performers", nil)

		s.Equal(http.StatusOK, rec.Code)
		var resp []resdto.EmployeePerformanceResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Require().Len(resp, 1)
		s.Equal(int64(18), resp[0].TotalClaimed)
		s.NotNil(resp[0].LastClaimed)
	})
}

func (s *AnalyticsHandlerTestSuite) TestSummary() {
	s.Run("success: returns 200 with totals", func() {
		summary := &readmodel.SummaryRM{TotalEmployees: 5, TotalCoupons: 100, TotalClaimed: 60}
		s.mockQ.EXPECT().Summary(gomock.Any()).Return(summary, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/summary", nil)

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.SummaryResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(int64(5), resp.TotalEmployees)
		s.Equal(int64(100), resp.TotalCoupons)
		s.Equal(int64(60), resp.TotalClaimed)
	})
}
