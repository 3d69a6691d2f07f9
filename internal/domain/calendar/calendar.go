package calendar

import (
	"time"

	"mealpass-api/internal/pkg/clock"
)

const dateLayout = "2006-01-02"

// Holidays maps an ISO date string ("2006-01-02") to a descriptive label.
// Dates outside the populated years simply fall back to the weekday rule.
type Holidays map[string]string

// Calendar resolves working days for the single business timezone the whole
// system operates in. It is a pure value: the same range always yields the
// same sequence of dates.
type Calendar struct {
	loc      *time.Location
	holidays Holidays
}

func New(loc *time.Location, holidays Holidays) *Calendar {
	if holidays == nil {
		holidays = Holidays{}
	}
	return &Calendar{loc: loc, holidays: holidays}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// DateOf truncates an instant to midnight of its business-timezone calendar
// day. Every "today" / expiry comparison in the system goes through this.
func (c *Calendar) DateOf(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

func (c *Calendar) Today(clk clock.Clock) time.Time {
	return c.DateOf(clk.Now())
}

func (c *Calendar) IsWeekend(t time.Time) bool {
	wd := c.DateOf(t).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[c.DateOf(t).Format(dateLayout)]
	return ok
}

func (c *Calendar) HolidayName(t time.Time) (string, bool) {
	name, ok := c.holidays[c.DateOf(t).Format(dateLayout)]
	return name, ok
}

func (c *Calendar) IsWorkingDay(t time.Time) bool {
	return !c.IsWeekend(t) && !c.IsHoliday(t)
}

// NextWorkingDay scans forward one day at a time from the given date,
// exclusive. Holiday density bounds the scan to a handful of days in
// practice.
func (c *Calendar) NextWorkingDay(t time.Time) time.Time {
	day := c.DateOf(t).AddDate(0, 0, 1)
	for !c.IsWorkingDay(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// WorkingDaysInRange returns the working days between start and end,
// inclusive of both bounds, in ascending order.
func (c *Calendar) WorkingDaysInRange(start, end time.Time) []time.Time {
	var days []time.Time
	cur := c.DateOf(start)
	last := c.DateOf(end)
	for !cur.After(last) {
		if c.IsWorkingDay(cur) {
			days = append(days, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

func (c *Calendar) WorkingDaysInMonth(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, c.loc)
	last := first.AddDate(0, 1, -1)
	return c.WorkingDaysInRange(first, last)
}
