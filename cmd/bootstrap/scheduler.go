package bootstrap

import (
	"context"
	"log/slog"

	"candidate-assistance/internal/pkg/config"
	"candidate-assistance/internal/usecase/assistance"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(assistance.NewExpirySweeper),
	fx.Invoke(startExpirySweeper),
)

func startExpirySweeper(lc fx.Lifecycle, cfg config.Config, sweeper *assistance.ExpirySweeper, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("expiry scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("expiry scheduler started", "interval", cfg.Scheduler.ExpiryInterval.String())
			// the loop outlives OnStart's context
			return sweeper.Start(context.Background(), assistance.NewTimeTicker(cfg.Scheduler.ExpiryInterval))
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
