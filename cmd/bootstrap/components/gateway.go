package components

import (
	"expo-gateway/internal/infra/expoapi"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewExpoClient,
			fx.As(new(shared.ExpoGateway)),
		),
	),
)

func NewExpoClient(cfg config.Config) *expoapi.Client {
	return expoapi.NewClient(cfg.Backend)
}
