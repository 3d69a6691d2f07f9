//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaimFixture(t *testing.T) (commands.ClaimCommands, *fakeUoW, *clock.MockClock, *time.Location) {
	t.Helper()
	loc := manilaLocation(t)
	cal := calendar.New(loc, calendar.Holidays{})
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 3, 17, 12, 0, 0, 0, loc))
	return commands.NewClaimUseCase(uow, cal, clk), uow, clk, loc
}

func unclaimedSnapshot(id uuid.UUID, date time.Time) shared.CouponSnapshot {
	return shared.CouponSnapshot{
		ID:          id,
		EmployeeID:  uuid.New(),
		CouponDate:  date,
		Barcode:     "MC00012345",
		WorkdayCode: "WDdeadbeef20250317123",
		CreatedAt:   date.AddDate(0, 0, -10),
		UpdatedAt:   date.AddDate(0, 0, -10),
	}
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("claims an available coupon once", func(t *testing.T) {
		uc, uow, clk, loc := newClaimFixture(t)
		id := uuid.New()
		uow.tx.coupons.snapshots[id] = unclaimedSnapshot(id, time.Date(2025, 3, 17, 0, 0, 0, 0, loc))

		result, err := uc.Claim(ctx, id)
		require.NoError(t, err)
		assert.True(t, result.Coupon.IsClaimed)
		require.NotNil(t, result.Coupon.ClaimedAt)
		assert.Equal(t, clk.Now(), *result.Coupon.ClaimedAt)
		assert.Equal(t, clk.Now(), uow.tx.coupons.claimed[id])

		// The gate is one-way
		_, err = uc.Claim(ctx, id)
		assert.ErrorIs(t, err, coupon.ErrAlreadyClaimed)
	})

	t.Run("same-day coupon stays claimable all day", func(t *testing.T) {
		uc, uow, clk, loc := newClaimFixture(t)
		id := uuid.New()
		uow.tx.coupons.snapshots[id] = unclaimedSnapshot(id, time.Date(2025, 3, 17, 0, 0, 0, 0, loc))
		clk.Set(time.Date(2025, 3, 17, 23, 59, 0, 0, loc))

		_, err := uc.Claim(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("expired the day after its date", func(t *testing.T) {
		uc, uow, _, loc := newClaimFixture(t)
		id := uuid.New()
		uow.tx.coupons.snapshots[id] = unclaimedSnapshot(id, time.Date(2025, 3, 16, 0, 0, 0, 0, loc))

		_, err := uc.Claim(ctx, id)
		assert.ErrorIs(t, err, coupon.ErrExpired)
		assert.Empty(t, uow.tx.coupons.claimed)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		uc, _, _, _ := newClaimFixture(t)

		_, err := uc.Claim(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})
}
