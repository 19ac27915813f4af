package bootstrap

import (
	"qr-loyalty-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.RateLimitModule,
	components.UseCaseModule,
	components.HandlerModule,
)
