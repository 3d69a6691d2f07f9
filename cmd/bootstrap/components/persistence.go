package components

import (
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/infra/readstore"
	"mealpass-api/internal/infra/repository"
	"mealpass-api/internal/infra/uow"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/queries"
	"mealpass-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Employee
		fx.Annotate(
			readstore.NewEmployeeReadStore,
			fx.As(new(queries.EmployeeReadStore)),
		),
		// Coupon
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
			fx.As(new(commands.ArtifactPathsReader)),
		),
		// Notification
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// Analytics
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Employee
		fx.Annotate(
			repository.NewEmployeeRepository,
			fx.As(new(shared.EmployeeRepository)),
		),
		// Coupon
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(shared.CouponRepository)),
		),
		// Notification
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
