package response

import (
	"mealpass-api/internal/usecase/queries"
	"mealpass-api/internal/usecase/readmodel"
	"mealpass-api/internal/usecase/shared"
)

const couponDateLayout = "2006-01-02"

type CouponResponse struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employee_id"`
	CouponDate  string            `json:"coupon_date"`
	Barcode     string            `json:"barcode"`
	WorkdayCode string            `json:"workday_code"`
	ImagePath   *string           `json:"barcode_image_path,omitempty"`
	SVGPath     *string           `json:"barcode_svg_path,omitempty"`
	Base64      *string           `json:"barcode_base64,omitempty"`
	IsClaimed   bool              `json:"is_claimed"`
	ClaimedAt   *int64            `json:"claimed_at,omitempty"`
	CreatedAt   int64             `json:"created_at"`
	Employee    *EmployeeResponse `json:"employee,omitempty"`
}

func FromCoupon(c *readmodel.CouponRM) *CouponResponse {
	resp := &CouponResponse{
		ID:          c.ID.String(),
		EmployeeID:  c.EmployeeID.String(),
		CouponDate:  c.CouponDate.Format(couponDateLayout),
		Barcode:     c.Barcode,
		WorkdayCode: c.WorkdayCode,
		ImagePath:   c.ImagePath,
		SVGPath:     c.SVGPath,
		Base64:      c.Base64,
		IsClaimed:   c.IsClaimed,
		CreatedAt:   c.CreatedAt.Unix(),
	}
	if c.ClaimedAt != nil {
		ts := c.ClaimedAt.Unix()
		resp.ClaimedAt = &ts
	}
	if c.Employee != nil {
		resp.Employee = FromEmployee(c.Employee)
	}
	return resp
}

func FromCouponList(items []readmodel.CouponRM) []*CouponResponse {
	res := make([]*CouponResponse, len(items))
	for i := range items {
		res[i] = FromCoupon(&items[i])
	}
	return res
}

type CouponStatsResponse struct {
	Total     int64 `json:"total"`
	Claimed   int64 `json:"claimed"`
	Expired   int64 `json:"expired"`
	Available int64 `json:"available"`
}

type CouponListResponse struct {
	Coupons []*CouponResponse   `json:"coupons"`
	Stats   CouponStatsResponse `json:"stats"`
}

func FromCouponListResult(r *queries.CouponListResult) *CouponListResponse {
	return &CouponListResponse{
		Coupons: FromCouponList(r.Coupons),
		Stats: CouponStatsResponse{
			Total:     r.Stats.Total,
			Claimed:   r.Stats.Claimed,
			Expired:   r.Stats.Expired,
			Available: r.Stats.Available,
		},
	}
}

func FromCouponSnapshot(s *shared.CouponSnapshot) *CouponResponse {
	resp := &CouponResponse{
		ID:          s.ID.String(),
		EmployeeID:  s.EmployeeID.String(),
		CouponDate:  s.CouponDate.Format(couponDateLayout),
		Barcode:     s.Barcode,
		WorkdayCode: s.WorkdayCode,
		IsClaimed:   s.IsClaimed,
		CreatedAt:   s.CreatedAt.Unix(),
	}
	if s.ImagePath != "" {
		resp.ImagePath = &s.ImagePath
	}
	if s.SVGPath != "" {
		resp.SVGPath = &s.SVGPath
	}
	if s.Base64 != "" {
		resp.Base64 = &s.Base64
	}
	if s.ClaimedAt != nil {
		ts := s.ClaimedAt.Unix()
		resp.ClaimedAt = &ts
	}
	return resp
}

type ClaimedCouponResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	CouponDate string `json:"coupon_date"`
	Barcode    string `json:"barcode"`
	ClaimedAt  int64  `json:"claimed_at"`
}

func FromClaimedCoupon(s shared.CouponSnapshot) *ClaimedCouponResponse {
	resp := &ClaimedCouponResponse{
		ID:         s.ID.String(),
		EmployeeID: s.EmployeeID.String(),
		CouponDate: s.CouponDate.Format(couponDateLayout),
		Barcode:    s.Barcode,
	}
	if s.ClaimedAt != nil {
		resp.ClaimedAt = s.ClaimedAt.Unix()
	}
	return resp
}

type GenerateCouponsResponse struct {
	EmployeeID string          `json:"employee_id"`
	Created    int             `json:"created"`
	Sample     *CouponResponse `json:"sample,omitempty"`
}

type GenerateAllCouponsResponse struct {
	TotalCreated int `json:"total_created"`
	Processed    int `json:"processed"`
	Skipped      int `json:"skipped"`
}

type DashboardResponse struct {
	TotalCoupons     int64             `json:"total_coupons"`
	ClaimedToday     int64             `json:"claimed_today"`
	ClaimedThisMonth int64             `json:"claimed_this_month"`
	ExpiredCoupons   int64             `json:"expired_coupons"`
	AvailableCoupons int64             `json:"available_coupons"`
	RecentClaims     []*CouponResponse `json:"recent_claims"`
}

func FromDashboard(v *queries.DashboardView) *DashboardResponse {
	return &DashboardResponse{
		TotalCoupons:     v.Stats.TotalCoupons,
		ClaimedToday:     v.Stats.ClaimedToday,
		ClaimedThisMonth: v.Stats.ClaimedThisMonth,
		ExpiredCoupons:   v.Stats.ExpiredCoupons,
		AvailableCoupons: v.Stats.AvailableCoupons,
		RecentClaims:     FromCouponList(v.RecentClaims),
	}
}
