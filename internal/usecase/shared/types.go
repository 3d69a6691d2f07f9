package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side query types.

type EmployeeSnapshot struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	Department string
}

func (e EmployeeSnapshot) FullName() string {
	return e.FirstName + " " + e.LastName
}

type CouponSnapshot struct {
	ID          uuid.UUID
	EmployeeID  uuid.UUID
	CouponDate  time.Time
	Barcode     string
	WorkdayCode string
	ImagePath   string
	SVGPath     string
	Base64      string
	IsClaimed   bool
	ClaimedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DepartmentClaimStats is the per-department aggregate the sweep's
// low-performance rule evaluates. ClaimRate is a percentage.
type DepartmentClaimStats struct {
	Department     string
	TotalCoupons   int64
	ClaimedCoupons int64
	ClaimRate      float64
}

type EmployeeClaimStats struct {
	EmployeeID     uuid.UUID
	FirstName      string
	LastName       string
	Department     string
	TotalCoupons   int64
	ClaimedCoupons int64
}

func (e EmployeeClaimStats) FullName() string {
	return e.FirstName + " " + e.LastName
}
