//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/domain/notification"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSweepFixture(t *testing.T) (commands.SweepCommands, *fakeUoW, *clock.MockClock) {
	t.Helper()
	loc := manilaLocation(t)
	cal := calendar.New(loc, calendar.Holidays{})
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 3, 17, 8, 0, 0, 0, loc))
	return commands.NewSweepUseCase(uow, cal, clk), uow, clk
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("expiring coupons raise a high priority alert", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		uow.tx.reads.expiring = 7

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		require.Len(t, result.Created, 1)

		n := result.Created[0]
		assert.Equal(t, notification.TypeCouponExpiry, n.Type())
		assert.Equal(t, notification.PriorityHigh, n.Priority())
	})

	t.Run("quiet state creates nothing", func(t *testing.T) {
		uc, _, _ := newSweepFixture(t)

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, result.Created)
	})

	t.Run("repeated runs on the same day do not duplicate", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		uow.tx.reads.expiring = 3

		first, err := uc.Run(ctx)
		require.NoError(t, err)
		require.Len(t, first.Created, 1)

		second, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, second.Created)
		assert.Len(t, uow.tx.notifications.created, 1)
	})

	t.Run("retried transaction reports only committed alerts", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		uow.tx.reads.expiring = 7
		uow.replays = 1

		result, err := uc.Run(ctx)
		require.NoError(t, err)

		require.Len(t, result.Created, 1)
		require.Len(t, uow.tx.notifications.created, 1)
		assert.Equal(t, uow.tx.notifications.created[0].ID(), result.Created[0].ID())
	})

	t.Run("expiry window is the next Manila calendar day", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		loc := manilaLocation(t)

		_, err := uc.Run(ctx)
		require.NoError(t, err)

		// Bounds must be Manila midnights regardless of the server zone;
		// date truncation downstream happens in the bound's own location.
		midnight := time.Date(2025, 3, 17, 0, 0, 0, 0, loc)
		assert.True(t, uow.tx.reads.expiringAfter.Equal(midnight))
		assert.True(t, uow.tx.reads.expiringUntil.Equal(midnight.AddDate(0, 0, 1)))
		assert.Equal(t, loc, uow.tx.reads.expiringAfter.Location())
	})

	t.Run("next business day sweeps again", func(t *testing.T) {
		uc, uow, clk := newSweepFixture(t)
		uow.tx.reads.expiring = 3

		_, err := uc.Run(ctx)
		require.NoError(t, err)

		clk.Add(24 * time.Hour)
		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Len(t, result.Created, 1)
		assert.Len(t, uow.tx.notifications.created, 2)
	})

	t.Run("low department claim rate", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		uow.tx.reads.deptStats = []shared.DepartmentClaimStats{
			{Department: "Engineering", TotalCoupons: 30, ClaimedCoupons: 10, ClaimRate: 33.3},
			{Department: "Sales", TotalCoupons: 20, ClaimedCoupons: 18, ClaimRate: 90.0},
		}

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		require.Len(t, result.Created, 1)

		n := result.Created[0]
		assert.Equal(t, notification.TypeDepartmentAlert, n.Type())
		assert.Equal(t, notification.PriorityMedium, n.Priority())
		require.NotNil(t, n.Department())
		assert.Equal(t, "Engineering", *n.Department())
		assert.Contains(t, n.Message(), "33.3%")
	})

	t.Run("rate exactly at the threshold does not alert", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		uow.tx.reads.deptStats = []shared.DepartmentClaimStats{
			{Department: "Engineering", TotalCoupons: 10, ClaimedCoupons: 7, ClaimRate: 70.0},
		}

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, result.Created)
	})

	t.Run("perfect claim streak earns an achievement", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		employeeID := uuid.New()
		uow.tx.reads.achievers = []shared.EmployeeClaimStats{
			{EmployeeID: employeeID, FirstName: "Maria", LastName: "Santos", Department: "Engineering", TotalCoupons: 8, ClaimedCoupons: 8},
		}

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		require.Len(t, result.Created, 1)

		n := result.Created[0]
		assert.Equal(t, notification.TypeAchievement, n.Type())
		assert.Equal(t, notification.PriorityLow, n.Priority())
		require.NotNil(t, n.EmployeeID())
		assert.Equal(t, employeeID, *n.EmployeeID())
		assert.Contains(t, n.Message(), "Maria Santos")
	})

	t.Run("too few coupons for an achievement", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		uow.tx.reads.achievers = []shared.EmployeeClaimStats{
			{EmployeeID: uuid.New(), FirstName: "Jose", LastName: "Reyes", Department: "Sales", TotalCoupons: 4, ClaimedCoupons: 4},
		}

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, result.Created)
	})

	t.Run("all three rules can fire in one run", func(t *testing.T) {
		uc, uow, _ := newSweepFixture(t)
		uow.tx.reads.expiring = 2
		uow.tx.reads.deptStats = []shared.DepartmentClaimStats{
			{Department: "Operations", TotalCoupons: 40, ClaimedCoupons: 8, ClaimRate: 20.0},
		}
		uow.tx.reads.achievers = []shared.EmployeeClaimStats{
			{EmployeeID: uuid.New(), FirstName: "Ana", LastName: "Cruz", Department: "Sales", TotalCoupons: 6, ClaimedCoupons: 6},
		}

		result, err := uc.Run(ctx)
		require.NoError(t, err)
		assert.Len(t, result.Created, 3)
	})
}
