package components

import (
	"venue-admin/internal/handler"
	"venue-admin/internal/handler/api"
	"venue-admin/internal/handler/middleware"
	"venue-admin/internal/pkg/config"
	"venue-admin/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewRatesHandler,
		api.NewReservationHandler,
		NewAuthMiddleware,
		func(q *api.QuoteHandler, r *api.RatesHandler, res *api.ReservationHandler) handler.Handlers {
			return handler.Handlers{Quotes: q, Rates: r, Reservations: res}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(validator usecase.TokenValidator, cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(validator, cfg.JWT.AdminRole)
}
