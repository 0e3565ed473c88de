package components

import (
	"expo-gateway/internal/infra/session"
	"expo-gateway/internal/pkg/clock"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/usecase/commands"
	"expo-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionWriteStore)),
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			NewConfirmationStore,
			fx.As(new(commands.ConfirmationStore)),
		),
	),
)

func NewSessionStore(cfg config.Config, clk clock.Clock) *session.Store {
	return session.NewStore(cfg.Session, clk)
}

func NewConfirmationStore(cfg config.Config, clk clock.Clock) *session.ConfirmationStore {
	return session.NewConfirmationStore(cfg.Session, clk)
}
