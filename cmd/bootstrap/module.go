package bootstrap

import (
	"acacia-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	BrokerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
