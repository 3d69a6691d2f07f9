package readmodel

type DepartmentAnalyticsRM struct {
	Department     string  `json:"department"`
	TotalCoupons   int64   `json:"total_coupons"`
	ClaimedCoupons int64   `json:"claimed_coupons"`
	ClaimRate      float64 `json:"claim_rate"`
}

type SummaryRM struct {
	TotalEmployees int64 `json:"totalEmployees"`
	TotalCoupons   int64 `json:"totalCoupons"`
	TotalClaimed   int64 `json:"totalClaimedCoupons"`
}
