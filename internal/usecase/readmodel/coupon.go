package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CouponRM struct {
	ID          uuid.UUID   `json:"id"`
	EmployeeID  uuid.UUID   `json:"employee_id"`
	CouponDate  time.Time   `json:"coupon_date"`
	Barcode     string      `json:"barcode"`
	WorkdayCode string      `json:"workday_code"`
	ImagePath   *string     `json:"barcode_image_path,omitempty"`
	SVGPath     *string     `json:"barcode_svg_path,omitempty"`
	Base64      *string     `json:"barcode_base64,omitempty"`
	IsClaimed   bool        `json:"is_claimed"`
	ClaimedAt   *time.Time  `json:"claimed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Employee    *EmployeeRM `json:"employee,omitempty"`
}

// CouponStatsRM is the derived status breakdown for a coupon set. Expired and
// available are computed against the business-timezone day, never stored.
type CouponStatsRM struct {
	Total     int64 `json:"total"`
	Claimed   int64 `json:"claimed"`
	Expired   int64 `json:"expired"`
	Available int64 `json:"available"`
}

type DashboardStatsRM struct {
	TotalCoupons     int64 `json:"total_coupons"`
	ClaimedToday     int64 `json:"claimed_today"`
	ClaimedThisMonth int64 `json:"claimed_this_month"`
	ExpiredCoupons   int64 `json:"expired_coupons"`
	AvailableCoupons int64 `json:"available_coupons"`
}
