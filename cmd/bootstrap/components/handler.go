package components

import (
	"qr-loyalty-service/internal/handler"
	"qr-loyalty-service/internal/handler/api"
	"qr-loyalty-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScanHandler,
		api.NewQrCodeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
