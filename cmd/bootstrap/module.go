package bootstrap

import (
	"appointment-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything except the HTTP surface; cmd/horizon runs on it.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.HandlerModule,
)
