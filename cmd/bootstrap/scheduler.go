package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"mealpass-api/internal/pkg/config"
	"mealpass-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartSweepScheduler),
)

// StartSweepScheduler runs the notification sweep on a fixed interval. The
// sweep itself dedupes per business day, so the interval only controls how
// quickly new conditions are noticed.
func StartSweepScheduler(lc fx.Lifecycle, cfg config.Config, sweep commands.SweepCommands) {
	if !cfg.Sweep.Enabled {
		slog.Info("notification sweep scheduler disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Sweep.Interval)
				defer ticker.Stop()

				slog.Info("notification sweep scheduler started", "interval", cfg.Sweep.Interval.String())
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if _, err := sweep.Run(ctx); err != nil {
							slog.Error("scheduled notification sweep failed", "error", err.Error())
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
