package bootstrap

import (
	"expo-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.GatewayModule,
	components.SessionModule,
	components.UseCaseModule,
	components.HandlerModule,
)
