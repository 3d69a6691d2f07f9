//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/config"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBusiness = config.BusinessConfig{
	TimeZone: "Asia/Manila",
	MinYear:  2024,
	MaxYear:  2030,
}

func manilaLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return loc
}

func newGenerationFixture(t *testing.T, holidays calendar.Holidays) (commands.GenerationCommands, *fakeUoW, *fakeRenderer, clock.Clock) {
	t.Helper()
	loc := manilaLocation(t)
	cal := calendar.New(loc, holidays)
	uow := newFakeUoW()
	renderer := &fakeRenderer{}
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, loc))
	uc := commands.NewGenerationUseCase(uow, cal, renderer, clk, testBusiness)
	return uc, uow, renderer, clk
}

func TestGenerateForEmployee(t *testing.T) {
	ctx := context.Background()
	employee := shared.EmployeeSnapshot{
		ID:         uuid.New(),
		FirstName:  "Maria",
		LastName:   "Santos",
		Email:      "maria.santos@example.com",
		Department: "Engineering",
	}

	t.Run("creates one coupon per weekday", func(t *testing.T) {
		uc, uow, _, _ := newGenerationFixture(t, calendar.Holidays{})
		uow.tx.reads.addEmployee(employee)

		result, err := uc.GenerateForEmployee(ctx, employee.ID, 3, 2025)
		require.NoError(t, err)

		// March 2025 has 21 weekdays
		assert.Equal(t, 21, result.Created)
		assert.Len(t, uow.tx.coupons.created, 21)
		require.NotNil(t, result.SampleCoupon)
		assert.Equal(t, employee.ID, result.SampleCoupon.EmployeeID)

		seen := make(map[string]struct{})
		for _, c := range uow.tx.coupons.created {
			require.NoError(t, c.Barcode().Validate())
			_, dup := seen[c.Barcode().String()]
			assert.False(t, dup, "duplicate barcode %s", c.Barcode())
			seen[c.Barcode().String()] = struct{}{}

			assert.NotEqual(t, time.Saturday, c.CouponDate().Weekday())
			assert.NotEqual(t, time.Sunday, c.CouponDate().Weekday())
			assert.False(t, c.IsClaimed())
		}
	})

	t.Run("holiday table reduces the working days", func(t *testing.T) {
		uc, uow, _, _ := newGenerationFixture(t, calendar.DefaultHolidays())
		uow.tx.reads.addEmployee(employee)

		result, err := uc.GenerateForEmployee(ctx, employee.ID, 3, 2025)
		require.NoError(t, err)

		// 2025-03-31 (Eid al-Fitr) lands on a Monday
		assert.Equal(t, 20, result.Created)
	})

	t.Run("retried transaction reports only committed rows", func(t *testing.T) {
		uc, uow, _, _ := newGenerationFixture(t, calendar.Holidays{})
		uow.tx.reads.addEmployee(employee)
		uow.replays = 1

		result, err := uc.GenerateForEmployee(ctx, employee.ID, 3, 2025)
		require.NoError(t, err)

		// The rolled-back attempt must not inflate the counts, and the
		// sample must belong to the batch that actually committed.
		assert.Equal(t, 21, result.Created)
		assert.Len(t, uow.tx.coupons.created, 21)

		require.NotNil(t, result.SampleCoupon)
		var committed bool
		for _, c := range uow.tx.coupons.created {
			if c.ID() == result.SampleCoupon.ID {
				committed = true
				break
			}
		}
		assert.True(t, committed)
	})

	t.Run("second generation for the same period conflicts", func(t *testing.T) {
		uc, uow, _, _ := newGenerationFixture(t, calendar.Holidays{})
		uow.tx.reads.addEmployee(employee)
		uow.tx.reads.counts[periodKey(employee.ID, 3, 2025)] = 21

		_, err := uc.GenerateForEmployee(ctx, employee.ID, 3, 2025)
		assert.ErrorIs(t, err, errs.ErrCouponsAlreadyExist)
		assert.Empty(t, uow.tx.coupons.created)
	})

	t.Run("unknown employee", func(t *testing.T) {
		uc, _, _, _ := newGenerationFixture(t, calendar.Holidays{})

		_, err := uc.GenerateForEmployee(ctx, uuid.New(), 3, 2025)
		assert.ErrorIs(t, err, errs.ErrEmployeeNotFound)
	})

	t.Run("render failure does not abort generation", func(t *testing.T) {
		uc, uow, renderer, _ := newGenerationFixture(t, calendar.Holidays{})
		renderer.fail = true
		uow.tx.reads.addEmployee(employee)

		result, err := uc.GenerateForEmployee(ctx, employee.ID, 3, 2025)
		require.NoError(t, err)
		assert.Equal(t, 21, result.Created)
		for _, c := range uow.tx.coupons.created {
			assert.Empty(t, c.Artifacts().ImagePath)
			assert.Empty(t, c.Artifacts().Base64)
		}
	})

	t.Run("barcode space exhausted", func(t *testing.T) {
		uc, uow, _, _ := newGenerationFixture(t, calendar.Holidays{})
		uow.tx.reads.addEmployee(employee)
		uow.tx.reads.barcodeAlwaysTaken = true

		_, err := uc.GenerateForEmployee(ctx, employee.ID, 3, 2025)
		assert.ErrorIs(t, err, errs.ErrBarcodeExhausted)
	})

	t.Run("period validation", func(t *testing.T) {
		uc, _, _, _ := newGenerationFixture(t, calendar.Holidays{})

		cases := []struct {
			name  string
			month int
			year  int
		}{
			{"month zero", 0, 2025},
			{"month thirteen", 13, 2025},
			{"year below range", 6, 2023},
			{"year above range", 6, 2031},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.GenerateForEmployee(ctx, employee.ID, tc.month, tc.year)
				assert.ErrorIs(t, err, errs.ErrInvalidPeriod)
			})
		}
	})
}

func TestGenerateForAll(t *testing.T) {
	ctx := context.Background()

	first := shared.EmployeeSnapshot{ID: uuid.New(), FirstName: "Ana", LastName: "Cruz", Email: "ana@example.com", Department: "Sales"}
	second := shared.EmployeeSnapshot{ID: uuid.New(), FirstName: "Jose", LastName: "Reyes", Email: "jose@example.com", Department: "Sales"}

	t.Run("skips employees already covered", func(t *testing.T) {
		uc, uow, _, _ := newGenerationFixture(t, calendar.Holidays{})
		uow.tx.reads.addEmployee(first)
		uow.tx.reads.addEmployee(second)
		uow.tx.reads.counts[periodKey(first.ID, 3, 2025)] = 21

		result, err := uc.GenerateForAll(ctx, 3, 2025)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Processed)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 21, result.TotalCreated)
		for _, c := range uow.tx.coupons.created {
			assert.Equal(t, second.ID, c.EmployeeID())
		}
	})

	t.Run("no employees registered", func(t *testing.T) {
		uc, _, _, _ := newGenerationFixture(t, calendar.Holidays{})

		_, err := uc.GenerateForAll(ctx, 3, 2025)
		assert.ErrorIs(t, err, errs.ErrNoEmployees)
	})
}
