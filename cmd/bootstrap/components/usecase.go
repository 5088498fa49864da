package components

import (
	"context"
	"io"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/infra/invoice"
	"glamping-booking/internal/infra/notify"
	"glamping-booking/internal/pkg/clock"
	"glamping-booking/internal/pkg/config"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseAdaptersModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultPriceCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	func(clk clock.Clock, calc pricing.PriceCalculator, cfg config.Config) *reservation.Factory {
		return reservation.NewFactory(clk, calc, cfg.Booking.HoldTTL)
	},
	func(clk clock.Clock, cfg config.Config) (*shared.BookingCalendar, error) {
		loc, err := cfg.Booking.Location()
		if err != nil {
			return nil, err
		}
		return shared.NewBookingCalendar(clk, loc, cfg.Booking.HoldTTL), nil
	},
)

var usecaseAdaptersModule = fx.Module("usecase/adapters",
	fx.Provide(
		NewConfirmationPublisher,
		fx.Annotate(
			func(cfg config.Config) *invoice.Renderer {
				return invoice.NewRenderer(cfg.Invoice)
			},
			fx.As(new(queries.InvoiceRenderer)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(cfg config.Config) commands.AdminCredentials {
			return commands.AdminCredentials{
				Email:        cfg.Admin.Email,
				PasswordHash: cfg.Admin.PasswordHash,
			}
		},
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewSettingsQueries,
	),
)

// NewConfirmationPublisher closes the broker connection on shutdown when one
// is configured.
func NewConfirmationPublisher(lc fx.Lifecycle, cfg config.Config) commands.ConfirmationPublisher {
	publisher := notify.NewPublisher(cfg.AMQP)
	if closer, ok := publisher.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return closer.Close()
			},
		})
	}
	return publisher
}
