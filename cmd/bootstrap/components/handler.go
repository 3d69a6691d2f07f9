package components

import (
	"mealpass-api/internal/handler"
	"mealpass-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEmployeeHandler,
		api.NewCouponHandler,
		api.NewNotificationHandler,
		api.NewAnalyticsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
