package components

import (
	"glamping-booking/internal/handler"
	"glamping-booking/internal/handler/api"
	"glamping-booking/internal/handler/middleware"
	"glamping-booking/internal/pkg/clock"
	"glamping-booking/internal/pkg/config"
	"glamping-booking/internal/pkg/jwt"
	"glamping-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		func(payments commands.PaymentCommands, cfg config.Config) *api.PaymentHandler {
			return api.NewPaymentHandler(payments, cfg.Payment.WebhookSecret)
		},
		func(tokens *jwt.Service) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(tokens)
		},
		func(cfg config.Config, rdb *redis.Client, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, rdb, clk)
		},
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, booking *api.BookingHandler, payment *api.PaymentHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		Payment: payment,
		Admin:   admin,
	}
}

func NewMiddlewares(auth *middleware.AuthMiddleware, rateLimit *middleware.RateLimiter) handler.Middlewares {
	return handler.Middlewares{
		Auth:      auth,
		RateLimit: rateLimit,
	}
}
