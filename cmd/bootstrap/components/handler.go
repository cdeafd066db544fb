package components

import (
	"barberpro/internal/handler"
	"barberpro/internal/handler/api"
	"barberpro/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewShopHandler,
		api.NewAppointmentHandler,
		api.NewCustomerHandler,
		api.NewFinanceHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			shop *api.ShopHandler,
			appointment *api.AppointmentHandler,
			customer *api.CustomerHandler,
			finance *api.FinanceHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Shop:        shop,
				Appointment: appointment,
				Customer:    customer,
				Finance:     finance,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
