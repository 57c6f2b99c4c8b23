package bootstrap

import (
	"context"
	"log/slog"

	"appointment-engine/internal/handler/middleware"
	"appointment-engine/internal/infra/db"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/pkg/jwt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// ConfigModule exposes the scheduling and horizon sections on their own so
// use cases and the job do not depend on the whole Config.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SchedulingConfig { return cfg.Scheduling },
		func(cfg config.Config) config.HorizonConfig { return cfg.Horizon },
	),
)

// LoggerModule installs the configured logger as the slog default.
var LoggerModule = fx.Module("logger",
	fx.Provide(func(cfg config.Config) *slog.Logger {
		return middleware.NewLogger(cfg.Log).GetSlogLogger()
	}),
)

var DBModule = fx.Module("db",
	fx.Provide(newPool),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(func(cfg config.Config) *jwt.Service {
		return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	}),
)

func newPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(closePool))
	return pool, nil
}
