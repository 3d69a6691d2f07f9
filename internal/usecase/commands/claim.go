package commands

import (
	"context"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/infra"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClaimResult struct {
	Coupon shared.CouponSnapshot
}

type ClaimCommands interface {
	Claim(ctx context.Context, couponID uuid.UUID) (*ClaimResult, error)
}

type claimUseCaseImpl struct {
	uow   shared.UnitOfWork
	cal   *calendar.Calendar
	clock clock.Clock
}

func NewClaimUseCase(uow shared.UnitOfWork, cal *calendar.Calendar, clk clock.Clock) ClaimCommands {
	return &claimUseCaseImpl{uow: uow, cal: cal, clock: clk}
}

// Claim locks the coupon row, replays the snapshot through the domain gate,
// and persists the transition. The row lock serializes concurrent claims so
// exactly one caller succeeds.
func (uc *claimUseCaseImpl) Claim(ctx context.Context, couponID uuid.UUID) (*ClaimResult, error) {
	now := uc.clock.Now()
	today := uc.cal.DateOf(now)

	var result *ClaimResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Coupons().FindByIDForUpdate(ctx, tx.DB(), couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCouponNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity := entityFromSnapshot(snap)
		if err := entity.Claim(now, today); err != nil {
			return err
		}

		if err := tx.Coupons().MarkClaimed(ctx, tx.DB(), couponID, now); err != nil {
			// The conditional update lost to a concurrent claim.
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.ErrAlreadyClaimed
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		claimed := *snap
		claimed.IsClaimed = true
		claimed.ClaimedAt = &now
		claimed.UpdatedAt = now
		result = &ClaimResult{Coupon: claimed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func entityFromSnapshot(s *shared.CouponSnapshot) *coupon.Coupon {
	return coupon.Restore(
		s.ID,
		s.EmployeeID,
		s.CouponDate,
		coupon.Barcode(s.Barcode),
		s.WorkdayCode,
		coupon.Artifacts{ImagePath: s.ImagePath, SVGPath: s.SVGPath, Base64: s.Base64},
		s.IsClaimed,
		s.ClaimedAt,
		s.CreatedAt,
		s.UpdatedAt,
	)
}
