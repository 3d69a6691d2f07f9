//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manila(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return loc
}

func date(loc *time.Location, y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func TestIsWorkingDay(t *testing.T) {
	loc := manila(t)
	cal := calendar.New(loc, calendar.DefaultHolidays())

	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"ordinary weekday", date(loc, 2025, time.March, 5), true},
		{"saturday", date(loc, 2025, time.March, 1), false},
		{"sunday", date(loc, 2025, time.March, 2), false},
		{"fixed holiday on a weekday", date(loc, 2025, time.December, 25), false},
		{"moveable holiday", date(loc, 2025, time.April, 17), false},
		{"black saturday is already a weekend", date(loc, 2025, time.April, 19), false},
		{"weekday outside populated years", date(loc, 2031, time.January, 1), true},
		{"weekend outside populated years", date(loc, 2031, time.January, 4), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cal.IsWorkingDay(c.day))
		})
	}
}

func TestHolidayName(t *testing.T) {
	cal := calendar.New(manila(t), calendar.DefaultHolidays())

	name, ok := cal.HolidayName(date(cal.Location(), 2025, time.June, 12))
	require.True(t, ok)
	assert.Equal(t, "Independence Day", name)

	_, ok = cal.HolidayName(date(cal.Location(), 2025, time.June, 13))
	assert.False(t, ok)
}

func TestWorkingDaysInRange(t *testing.T) {
	loc := manila(t)

	t.Run("weekdays only when no holidays are listed", func(t *testing.T) {
		cal := calendar.New(loc, nil)
		days := cal.WorkingDaysInMonth(2025, time.March)
		assert.Len(t, days, 21)
	})

	t.Run("holiday table removes weekday holidays", func(t *testing.T) {
		cal := calendar.New(loc, calendar.DefaultHolidays())
		// 2025-03-31 (Monday) is Eid al-Fitr in the default table.
		days := cal.WorkingDaysInMonth(2025, time.March)
		assert.Len(t, days, 20)
	})

	t.Run("ascending and inclusive of both bounds", func(t *testing.T) {
		cal := calendar.New(loc, nil)
		days := cal.WorkingDaysInRange(date(loc, 2025, time.March, 3), date(loc, 2025, time.March, 7))
		require.Len(t, days, 5)
		assert.Equal(t, date(loc, 2025, time.March, 3), days[0])
		assert.Equal(t, date(loc, 2025, time.March, 7), days[4])
		for i := 1; i < len(days); i++ {
			assert.True(t, days[i].After(days[i-1]))
		}
	})

	t.Run("same range yields the same sequence", func(t *testing.T) {
		cal := calendar.New(loc, calendar.DefaultHolidays())
		first := cal.WorkingDaysInMonth(2025, time.April)
		second := cal.WorkingDaysInMonth(2025, time.April)
		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("empty when range holds no working days", func(t *testing.T) {
		cal := calendar.New(loc, nil)
		days := cal.WorkingDaysInRange(date(loc, 2025, time.March, 1), date(loc, 2025, time.March, 2))
		assert.Empty(t, days)
	})
}

func TestNextWorkingDay(t *testing.T) {
	loc := manila(t)
	cal := calendar.New(loc, calendar.DefaultHolidays())

	cases := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"plain weekday", date(loc, 2025, time.March, 3), date(loc, 2025, time.March, 4)},
		{"friday skips the weekend", date(loc, 2025, time.March, 7), date(loc, 2025, time.March, 10)},
		{
			// Maundy Thursday through Easter Sunday is four straight
			// non-working days in 2025
			"holy week",
			date(loc, 2025, time.April, 16),
			date(loc, 2025, time.April, 21),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cal.NextWorkingDay(c.from))
		})
	}
}

func TestDateOf(t *testing.T) {
	loc := manila(t)
	cal := calendar.New(loc, nil)

	// 2025-03-10 23:00 UTC is already 2025-03-11 in Manila (UTC+8)
	utcEvening := time.Date(2025, time.March, 10, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, date(loc, 2025, time.March, 11), cal.DateOf(utcEvening))

	clk := clock.NewMockClock(utcEvening)
	assert.Equal(t, date(loc, 2025, time.March, 11), cal.Today(clk))
}
