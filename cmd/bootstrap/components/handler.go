package components

import (
	"pet-order/internal/handler"
	"pet-order/internal/handler/api"
	"pet-order/internal/handler/middleware"
	"pet-order/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewTransactionHandler,
		NewOwnerAuth,
	),
	fx.Invoke(handler.NewRouter),
)

func NewOwnerAuth(cfg config.Config) *middleware.OwnerAuthMiddleware {
	return middleware.NewOwnerAuthMiddleware(cfg.Auth)
}
