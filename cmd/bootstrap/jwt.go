package bootstrap

import (
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	// Session cookie lifetime doubles as token lifetime; the server-side
	// store enforces its own sliding TTL on top.
	return jwt.NewService(cfg.Session.Secret, cfg.Session.TTL)
}
