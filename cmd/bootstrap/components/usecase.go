package components

import (
	"mealpass-api/internal/infra/barcode"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/config"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewBarcodeRenderer,
		fx.As(new(commands.ArtifactRenderer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewGenerationUseCase,
		commands.NewClaimUseCase,
		commands.NewSweepUseCase,
		commands.NewNotificationUseCase,
		commands.NewEmployeeUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEmployeeQueries,
		queries.NewCouponQueries,
		queries.NewNotificationQueries,
		queries.NewAnalyticsQueries,
	),
)

func NewBarcodeRenderer(cfg config.Config) (*barcode.Code128Renderer, error) {
	return barcode.NewCode128Renderer(cfg.Barcode.Dir)
}
