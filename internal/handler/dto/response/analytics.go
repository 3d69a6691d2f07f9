package response

import (
	"mealpass-api/internal/usecase/readmodel"
)

type DepartmentAnalyticsResponse struct {
	Department     string  `json:"department"`
	TotalCoupons   int64   `json:"total_coupons"`
	ClaimedCoupons int64   `json:"claimed_coupons"`
	ClaimRate      float64 `json:"claim_rate"`
}

func FromDepartmentAnalyticsList(items []readmodel.DepartmentAnalyticsRM) []*DepartmentAnalyticsResponse {
	res := make([]*DepartmentAnalyticsResponse, len(items))
	for i, it := range items {
		res[i] = &DepartmentAnalyticsResponse{
			Department:     it.Department,
			TotalCoupons:   it.TotalCoupons,
			ClaimedCoupons: it.ClaimedCoupons,
			ClaimRate:      it.ClaimRate,
		}
	}
	return res
}

type SummaryResponse struct {
	TotalEmployees int64 `json:"totalEmployees"`
	TotalCoupons   int64 `json:"totalCoupons"`
	TotalClaimed   int64 `json:"totalClaimedCoupons"`
}

func FromSummary(s *readmodel.SummaryRM) *SummaryResponse {
	return &SummaryResponse{
		TotalEmployees: s.TotalEmployees,
		TotalCoupons:   s.TotalCoupons,
		TotalClaimed:   s.TotalClaimed,
	}
}
