package main

import (
	"context"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata" // business time zones in minimal images

	"appointment-engine/cmd/bootstrap"
	"appointment-engine/internal/job"
	"appointment-engine/internal/pkg/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

func startHorizon(lc fx.Lifecycle, h *job.Horizon, cfg config.HorizonConfig, logger *slog.Logger) {
	c := cron.New(cron.WithLocation(time.UTC), cron.WithLogger(job.NewCronLogger()))
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if _, err := h.Schedule(ctx, c); err != nil {
				cancel()
				return err
			}
			c.Start()
			logger.Info("horizon scheduler started", "schedule", cfg.Schedule, "days", cfg.Days)

			if cfg.RunOnStart {
				go func() {
					if _, err := h.RunOnce(ctx); err != nil {
						logger.Warn("initial horizon run completed with errors", "error", err.Error())
					}
				}()
			}
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-c.Stop().Done():
			case <-stopCtx.Done():
			}
			logger.Info("horizon scheduler stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.CoreModule,
		fx.Provide(job.NewHorizon),
		fx.Invoke(startHorizon),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start horizon", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop horizon", "error", err)
	}
}
