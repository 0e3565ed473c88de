package components

import (
	"expo-gateway/internal/handler"
	"expo-gateway/internal/handler/api"
	"expo-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewRegistrationHandler,
		api.NewSessionHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
