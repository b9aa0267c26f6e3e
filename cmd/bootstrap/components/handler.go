package components

import (
	"lending-ledger/internal/handler"
	"lending-ledger/internal/handler/api"
	"lending-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewLendingHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, items *api.ItemHandler, lending *api.LendingHandler, dashboard *api.DashboardHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Items: items, Lending: lending, Dashboard: dashboard}
		},
	),
	fx.Invoke(handler.NewRouter),
)
