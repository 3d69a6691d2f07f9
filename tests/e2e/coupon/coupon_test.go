//go:build e2e

package coupon_test

import (
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"mealpass-api/internal/handler/dto/request"
	"mealpass-api/internal/handler/dto/response"
	"mealpass-api/tests/common/dbtest"
	"mealpass-api/tests/common/httptest"
	"mealpass-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	employeesURL       = "/api/employees"
	generateURL        = "/api/coupons/generate"
	generateAllURL     = "/api/coupons/generate-all"
	claimURLFormat     = "/api/coupons/%s/claim"
	barcodeURLFormat   = "/api/coupons/barcode/%s"
	employeeCouponsURL = "/api/employees/%s/coupons?month=%d&year=%d"
)

var barcodePattern = regexp.MustCompile(`^MC\d{8}$`)

type CouponFlowTestSuite struct {
	e2e.SharedSuite
}

func TestCouponFlowSuite(t *testing.T) {
	suite.Run(t, new(CouponFlowTestSuite))
}

// nextMonth returns the first upcoming month so every generated coupon date
// lies in the future and the claim path is deterministic.
func (s *CouponFlowTestSuite) nextMonth() (int, int) {
	loc, err := time.LoadLocation(s.Config.Business.TimeZone)
	s.Require().NoError(err)
	now := time.Now().In(loc)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return int(first.Month()), first.Year()
}

func (s *CouponFlowTestSuite) createEmployee(email string) response.EmployeeResponse {
	req := request.CreateEmployeeRequest{
		FirstName:  "Maria",
		LastName:   "Santos",
		Email:      email,
		Department: "Engineering",
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, employeesURL, req)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp response.EmployeeResponse
	_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
	return resp
}

func (s *CouponFlowTestSuite) TestCouponLifecycle() {
	s.Run("generate, scan and claim", func() {
		employee := s.createEmployee("maria.santos@example.com")
		employeeID := uuid.MustParse(employee.ID)
		month, year := s.nextMonth()

		// Generate a month of coupons.
		genReq := request.GenerateCouponsRequest{EmployeeID: employeeID, Month: month, Year: year}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, generateURL, genReq)
		s.Require().Equal(http.StatusCreated, rec.Code)

		var genResp response.GenerateCouponsResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &genResp)
		s.Positive(genResp.Created)
		s.Require().NotNil(genResp.Sample)
		s.Regexp(barcodePattern, genResp.Sample.Barcode)

		// A second run for the same period is rejected.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, generateURL, genReq)
		s.Equal(http.StatusConflict, rec.Code)

		// The month listing matches what was generated.
		listURL := fmt.Sprintf(employeeCouponsURL, employee.ID, month, year)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var listResp response.CouponListResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &listResp)
		s.Require().Len(listResp.Coupons, genResp.Created)
		s.Equal(int64(genResp.Created), listResp.Stats.Total)
		s.Equal(int64(genResp.Created), listResp.Stats.Available)
		s.Zero(listResp.Stats.Claimed)

		// Scan one by barcode.
		target := listResp.Coupons[0]
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(barcodeURLFormat, target.Barcode), nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var scanned response.CouponResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &scanned)
		s.Equal(target.ID, scanned.ID)

		// Claim it. The second attempt must fail.
		claimURL := fmt.Sprintf(claimURLFormat, target.ID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, claimURL, nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var claimed response.ClaimedCouponResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &claimed)
		s.Equal(target.ID, claimed.ID)
		s.Positive(claimed.ClaimedAt)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, claimURL, nil)
		s.Equal(http.StatusConflict, rec.Code)

		// The listing now reports one claimed coupon.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &listResp)
		s.Equal(int64(1), listResp.Stats.Claimed)
	})

	s.Run("expired coupon cannot be claimed", func() {
		employeeID := dbtest.CreateTestEmployee(s.T(), s.DB, "jose.reyes@example.com", "Sales")
		yesterday := time.Now().AddDate(0, 0, -1)
		couponID := dbtest.CreateTestCoupon(s.T(), s.DB, employeeID, yesterday, "MC00000011", false)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(claimURLFormat, couponID), nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("claiming an unknown coupon returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(claimURLFormat, uuid.New()), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("concurrent claims allow exactly one success", func() {
		employeeID := dbtest.CreateTestEmployee(s.T(), s.DB, "ana.cruz@example.com", "Operations")
		tomorrow := time.Now().AddDate(0, 0, 1)
		couponID := dbtest.CreateTestCoupon(s.T(), s.DB, employeeID, tomorrow, "MC00000012", false)

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf(claimURLFormat, couponID), nil)
				codes[slot] = rec.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				succeeded++
			case http.StatusConflict:
			default:
				s.Failf("unexpected status", "got %d", code)
			}
		}
		s.Equal(1, succeeded)
	})

	s.Run("generate-all skips employees that are already covered", func() {
		covered := s.createEmployee("covered@example.com")
		s.createEmployee("uncovered@example.com")
		month, year := s.nextMonth()

		genReq := request.GenerateCouponsRequest{EmployeeID: uuid.MustParse(covered.ID), Month: month, Year: year}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, generateURL, genReq)
		s.Require().Equal(http.StatusCreated, rec.Code)

		var genResp response.GenerateCouponsResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &genResp)

		allReq := request.GenerateAllCouponsRequest{Month: month, Year: year}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, generateAllURL, allReq)
		s.Require().Equal(http.StatusCreated, rec.Code)

		var allResp response.GenerateAllCouponsResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &allResp)
		s.Equal(1, allResp.Processed)
		s.Equal(1, allResp.Skipped)
		s.Equal(genResp.Created, allResp.TotalCreated)
	})
}
