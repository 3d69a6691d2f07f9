package coupon

import (
	"time"

	"mealpass-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClaimed  = errs.New("coupon has already been claimed")
	ErrExpired         = errs.New("coupon has expired and cannot be claimed")
	ErrMissingEmployee = errs.New("coupon requires an employee")
	ErrMissingDate     = errs.New("coupon requires a coupon date")
)

// Artifacts are the rendered barcode representations. They are produced by an
// external codec; empty values mean "no artifact available", never an error.
type Artifacts struct {
	ImagePath string
	SVGPath   string
	Base64    string
}

// Coupon is a single-use, date-scoped meal voucher. It is created only by the
// bulk generation workflow and mutated only by the claim transition.
type Coupon struct {
	id          uuid.UUID
	employeeID  uuid.UUID
	couponDate  time.Time
	barcode     Barcode
	workdayCode string
	artifacts   Artifacts
	isClaimed   bool
	claimedAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCoupon(id, employeeID uuid.UUID, couponDate time.Time, barcode Barcode, workdayCode string, artifacts Artifacts, now time.Time) (*Coupon, error) {
	if employeeID == uuid.Nil {
		return nil, ErrMissingEmployee
	}
	if couponDate.IsZero() {
		return nil, ErrMissingDate
	}
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Coupon{
		id:          id,
		employeeID:  employeeID,
		couponDate:  couponDate,
		barcode:     barcode,
		workdayCode: workdayCode,
		artifacts:   artifacts,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Restore rebuilds a coupon from persisted state. Storage owns validity here;
// no invariants are rechecked.
func Restore(id, employeeID uuid.UUID, couponDate time.Time, barcode Barcode, workdayCode string, artifacts Artifacts, isClaimed bool, claimedAt *time.Time, createdAt, updatedAt time.Time) *Coupon {
	return &Coupon{
		id:          id,
		employeeID:  employeeID,
		couponDate:  couponDate,
		barcode:     barcode,
		workdayCode: workdayCode,
		artifacts:   artifacts,
		isClaimed:   isClaimed,
		claimedAt:   claimedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Claim is the one-way redemption gate. today must be the business-timezone
// calendar day; the caller serializes concurrent claims with a row lock.
func (c *Coupon) Claim(now, today time.Time) error {
	if c.isClaimed {
		return ErrAlreadyClaimed
	}
	if c.couponDate.Before(today) {
		return ErrExpired
	}
	c.isClaimed = true
	at := now
	c.claimedAt = &at
	c.updatedAt = now
	return nil
}

// Status is derived at query time, never stored.
func (c *Coupon) Status(today time.Time) Status {
	switch {
	case c.isClaimed:
		return StatusClaimed
	case c.couponDate.Before(today):
		return StatusExpired
	default:
		return StatusAvailable
	}
}

func (c *Coupon) IsExpired(today time.Time) bool {
	return !c.isClaimed && c.couponDate.Before(today)
}

func (c *Coupon) CanBeClaimed(today time.Time) bool {
	return !c.isClaimed && !c.couponDate.Before(today)
}

func (c *Coupon) ID() uuid.UUID { return c.id }
func (c *Coupon) EmployeeID() uuid.UUID { return c.employeeID }
func (c *Coupon) CouponDate() time.Time { return c.couponDate }
func (c *Coupon) Barcode() Barcode { return c.barcode }
func (c *Coupon) WorkdayCode() string { return c.workdayCode }
func (c *Coupon) Artifacts() Artifacts { return c.artifacts }
func (c *Coupon) IsClaimed() bool { return c.isClaimed }
func (c *Coupon) ClaimedAt() *time.Time { return c.claimedAt }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }
