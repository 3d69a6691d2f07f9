package bootstrap

import (
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/pkg/config"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewBusinessLocation,
		NewBusinessCalendar,
	),
)

// NewBusinessLocation resolves the single timezone all date comparisons use.
func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Business.TimeZone)
}

func NewBusinessCalendar(loc *time.Location) *calendar.Calendar {
	return calendar.New(loc, calendar.DefaultHolidays())
}
