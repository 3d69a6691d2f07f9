package commands

import (
	"context"
	"log/slog"
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/domain/notification"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/shared"
)

type SweepResult struct {
	Created []*notification.Notification
}

// SweepCommands derives notifications from aggregate coupon state. Run is
// idempotent within a business day: each rule checks for an existing
// notification of the same type (and scope) created since midnight before
// inserting.
type SweepCommands interface {
	Run(ctx context.Context) (*SweepResult, error)
}

type sweepUseCaseImpl struct {
	uow   shared.UnitOfWork
	cal   *calendar.Calendar
	clock clock.Clock
}

func NewSweepUseCase(uow shared.UnitOfWork, cal *calendar.Calendar, clk clock.Clock) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, cal: cal, clock: clk}
}

func (uc *sweepUseCaseImpl) Run(ctx context.Context) (*SweepResult, error) {
	now := uc.clock.Now()
	midnight := uc.cal.DateOf(now)

	var result *SweepResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may retry the closure after a rollback; the batch is
		// rebuilt per attempt so rolled-back notifications never leak out.
		batch := &SweepResult{}
		if err := uc.sweepExpiring(ctx, tx, now, midnight, batch); err != nil {
			return err
		}
		if err := uc.sweepDepartments(ctx, tx, now, midnight, batch); err != nil {
			return err
		}
		if err := uc.sweepAchievements(ctx, tx, now, midnight, batch); err != nil {
			return err
		}
		result = batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Created) > 0 {
		slog.Info("notification sweep created alerts", "count", len(result.Created))
	}
	return result, nil
}

// Rule 1: unclaimed coupons due on the next business-timezone calendar day.
// Bounds are Manila-located midnights so the date stored in Postgres is
// compared in the business day, not the server's.
func (uc *sweepUseCaseImpl) sweepExpiring(ctx context.Context, tx shared.Tx, now, midnight time.Time, result *SweepResult) error {
	count, err := tx.Reads().CountExpiringBetween(ctx, midnight, midnight.AddDate(0, 0, 1))
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if count == 0 {
		return nil
	}

	exists, err := tx.Notifications().ExistsSince(ctx, tx.DB(), notification.TypeCouponExpiry, nil, nil, midnight)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if exists {
		return nil
	}

	return uc.create(ctx, tx, notification.NewExpiryAlert(int(count), now), result)
}

// Rule 2: departments whose claim rate sits below the alert threshold.
func (uc *sweepUseCaseImpl) sweepDepartments(ctx context.Context, tx shared.Tx, now, midnight time.Time, result *SweepResult) error {
	stats, err := tx.Reads().DepartmentClaimStats(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, s := range stats {
		if s.TotalCoupons == 0 || s.ClaimRate >= notification.LowClaimRateThreshold {
			continue
		}

		dept := s.Department
		exists, err := tx.Notifications().ExistsSince(ctx, tx.DB(), notification.TypeDepartmentAlert, &dept, nil, midnight)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			continue
		}

		if err := uc.create(ctx, tx, notification.NewDepartmentAlert(dept, s.ClaimRate, now), result); err != nil {
			return err
		}
	}
	return nil
}

// Rule 3: employees who claimed every coupon, with enough coupons for the
// streak to mean something.
func (uc *sweepUseCaseImpl) sweepAchievements(ctx context.Context, tx shared.Tx, now, midnight time.Time, result *SweepResult) error {
	achievers, err := tx.Reads().PerfectClaimEmployees(ctx, notification.AchievementMinCoupons)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, a := range achievers {
		employeeID := a.EmployeeID
		exists, err := tx.Notifications().ExistsSince(ctx, tx.DB(), notification.TypeAchievement, nil, &employeeID, midnight)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			continue
		}

		n := notification.NewAchievement(a.EmployeeID, a.FullName(), a.Department, int(a.TotalCoupons), now)
		if err := uc.create(ctx, tx, n, result); err != nil {
			return err
		}
	}
	return nil
}

func (uc *sweepUseCaseImpl) create(ctx context.Context, tx shared.Tx, n *notification.Notification, result *SweepResult) error {
	if _, err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	result.Created = append(result.Created, n)
	return nil
}
