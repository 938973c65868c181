package components

import (
	"candidate-assistance/internal/handler"
	"candidate-assistance/internal/handler/api"
	"candidate-assistance/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAssistanceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
