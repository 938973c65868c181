package bootstrap

import (
	"candidate-assistance/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	EventsModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
