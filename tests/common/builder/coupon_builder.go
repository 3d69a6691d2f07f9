//go:build unit || e2e

package builder

import (
	"time"

	reqdto "mealpass-api/internal/handler/dto/request"
	"mealpass-api/internal/usecase/readmodel"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
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

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		CouponDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Barcode:     "MC00012345",
		WorkdayCode: "WDdeadbeef20250317042",
		ImagePath:   "barcodes/MC00012345.png",
		SVGPath:     "barcodes/MC00012345.svg",
		Base64:      "data:image/png;base64,AAAA",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) Claimed(at time.Time) *CouponBuilder {
	b.IsClaimed = true
	b.ClaimedAt = &at
	return b
}

// Build methods
func (b *CouponBuilder) BuildRM() *readmodel.CouponRM {
	return &readmodel.CouponRM{
		ID:          b.ID,
		EmployeeID:  b.EmployeeID,
		CouponDate:  b.CouponDate,
		Barcode:     b.Barcode,
		WorkdayCode: b.WorkdayCode,
		ImagePath:   &b.ImagePath,
		SVGPath:     &b.SVGPath,
		Base64:      &b.Base64,
		IsClaimed:   b.IsClaimed,
		ClaimedAt:   b.ClaimedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *CouponBuilder) BuildSnapshot() shared.CouponSnapshot {
	return shared.CouponSnapshot{
		ID:          b.ID,
		EmployeeID:  b.EmployeeID,
		CouponDate:  b.CouponDate,
		Barcode:     b.Barcode,
		WorkdayCode: b.WorkdayCode,
		ImagePath:   b.ImagePath,
		SVGPath:     b.SVGPath,
		Base64:      b.Base64,
		IsClaimed:   b.IsClaimed,
		ClaimedAt:   b.ClaimedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *CouponBuilder) BuildGenerateRequestDTO(month, year int) reqdto.GenerateCouponsRequest {
	return reqdto.GenerateCouponsRequest{
		EmployeeID: b.EmployeeID,
		Month:      month,
		Year:       year,
	}
}
