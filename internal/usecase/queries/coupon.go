package queries

import (
	"context"
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/infra"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const recentClaimsLimit = 10

type CouponListResult struct {
	Coupons []readmodel.CouponRM    `json:"coupons"`
	Stats   readmodel.CouponStatsRM `json:"stats"`
}

type DashboardView struct {
	Stats        readmodel.DashboardStatsRM `json:"stats"`
	RecentClaims []readmodel.CouponRM       `json:"recent_claims"`
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CouponRM, error)
	FindByBarcode(ctx context.Context, barcode string) (*readmodel.CouponRM, error)
	ListForEmployeeMonth(ctx context.Context, employeeID uuid.UUID, month, year int) ([]readmodel.CouponRM, error)
	ExpiringBetween(ctx context.Context, after, until time.Time) ([]readmodel.CouponRM, error)
	DashboardStats(ctx context.Context, today time.Time) (*readmodel.DashboardStatsRM, error)
	RecentClaims(ctx context.Context, limit int32) ([]readmodel.CouponRM, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*readmodel.CouponRM, error)
	GetByBarcode(ctx context.Context, barcode string) (*readmodel.CouponRM, error)
	ListForEmployeeMonth(ctx context.Context, employeeID uuid.UUID, month, year int) (*CouponListResult, error)
	ExpiringSoon(ctx context.Context) ([]readmodel.CouponRM, error)
	Dashboard(ctx context.Context) (*DashboardView, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	cal   *calendar.Calendar
	clock clock.Clock
}

func NewCouponQueries(store CouponReadStore, cal *calendar.Calendar, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{store: store, cal: cal, clock: clk}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.CouponRM, error) {
	rm, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (q *couponQueriesImpl) GetByBarcode(ctx context.Context, barcode string) (*readmodel.CouponRM, error) {
	if err := coupon.Barcode(barcode).Validate(); err != nil {
		return nil, errs.ErrCouponNotFound
	}
	rm, err := q.store.FindByBarcode(ctx, barcode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (q *couponQueriesImpl) ListForEmployeeMonth(ctx context.Context, employeeID uuid.UUID, month, year int) (*CouponListResult, error) {
	coupons, err := q.store.ListForEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	today := q.cal.Today(q.clock)
	result := &CouponListResult{Coupons: coupons}
	result.Stats.Total = int64(len(coupons))
	for _, c := range coupons {
		switch {
		case c.IsClaimed:
			result.Stats.Claimed++
		case c.CouponDate.Before(today):
			result.Stats.Expired++
		default:
			result.Stats.Available++
		}
	}
	return result, nil
}

// ExpiringSoon lists unclaimed coupons due on the next business-timezone
// calendar day. Bounds are Manila-located midnights so date truncation in
// the store happens in the business day.
func (q *couponQueriesImpl) ExpiringSoon(ctx context.Context) ([]readmodel.CouponRM, error) {
	today := q.cal.Today(q.clock)
	return q.store.ExpiringBetween(ctx, today, today.AddDate(0, 0, 1))
}

func (q *couponQueriesImpl) Dashboard(ctx context.Context) (*DashboardView, error) {
	today := q.cal.Today(q.clock)

	stats, err := q.store.DashboardStats(ctx, today)
	if err != nil {
		return nil, err
	}
	recent, err := q.store.RecentClaims(ctx, recentClaimsLimit)
	if err != nil {
		return nil, err
	}
	return &DashboardView{Stats: *stats, RecentClaims: recent}, nil
}
