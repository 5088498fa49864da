package commands

import (
	"context"
	"log/slog"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const PaymentSucceeded = "payment.succeeded"

type PaymentEvent struct {
	Type          string
	ReservationID uuid.UUID
}

type ConfirmResult struct {
	Reservation *queries.ReservationView
	// Ignored is set for event types other than payment.succeeded
	Ignored bool
	// Replayed is set when the reservation was already paid
	Replayed bool
	// Conflict is set when the date was taken by another booking before the
	// payment arrived. The reservation stays pending and needs a refund.
	Conflict bool
	Reason   string
}

type PaymentCommands interface {
	Confirm(ctx context.Context, event PaymentEvent) (*ConfirmResult, error)
}

type paymentCommandsImpl struct {
	uow       shared.UnitOfWork
	calendar  *shared.BookingCalendar
	publisher ConfirmationPublisher
}

func NewPaymentCommands(uow shared.UnitOfWork, cal *shared.BookingCalendar, publisher ConfirmationPublisher) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, calendar: cal, publisher: publisher}
}

// Confirm flips a reservation to paid exactly once. Under the day lock the
// date is checked again without the reservation itself, so a payment that
// arrives after its date was taken leaves it pending and reports Conflict.
// The notification is published after commit and its failure never undoes
// the payment.
func (uc *paymentCommandsImpl) Confirm(ctx context.Context, event PaymentEvent) (*ConfirmResult, error) {
	if event.Type != PaymentSucceeded {
		slog.Info("ignoring payment event", "type", event.Type, "reservation_id", event.ReservationID.String())
		return &ConfirmResult{Ignored: true}, nil
	}

	var (
		confirmed *reservation.Reservation
		replayed  bool
		conflict  *availability.Result
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reservations().FindByID(ctx, event.ReservationID)
		if derr != nil {
			return derr
		}
		if derr = tx.BookingDays().Lock(ctx, r.Product(), r.Date()); derr != nil {
			return derr
		}

		confirmed = r
		if r.IsPaid() {
			replayed = true
			return nil
		}

		settings, derr := shared.LoadSettings(ctx, tx.Settings(), r.Product())
		if derr != nil {
			return derr
		}
		day, derr := shared.LoadDay(ctx, tx, r.Product(), r.Date(), uc.calendar)
		if derr != nil {
			return derr
		}
		if result := shared.CheckConfirmation(settings, day, r); !result.OK() {
			conflict = &result
			return nil
		}

		now := uc.calendar.Now()
		if derr = r.MarkPaid(now); derr != nil {
			replayed = true
			return nil
		}
		flipped, derr := tx.Reservations().MarkPaid(ctx, r.ID(), now)
		if derr != nil {
			return derr
		}
		// a concurrent delivery won the race
		replayed = !flipped
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view := queries.NewReservationView(confirmed)
	if conflict != nil {
		slog.Error("payment received for a date that is no longer available, refund required",
			"reservation_id", view.ID.String(),
			"product", view.Product,
			"date", view.Date,
			"total", view.Total.String(),
			"reason", conflict.Reason)
		return &ConfirmResult{Reservation: view, Conflict: true, Reason: conflict.Reason}, nil
	}
	if replayed {
		slog.Info("payment already confirmed", "reservation_id", view.ID.String())
		return &ConfirmResult{Reservation: view, Replayed: true}, nil
	}

	slog.Info("payment confirmed", "reservation_id", view.ID.String(), "total", view.Total.String())
	uc.publish(ctx, view)
	return &ConfirmResult{Reservation: view}, nil
}

func (uc *paymentCommandsImpl) publish(ctx context.Context, view *queries.ReservationView) {
	if uc.publisher == nil {
		return
	}
	event := ReservationConfirmedEvent{
		Type:        EventReservationConfirmed,
		OccurredAt:  uc.calendar.Now(),
		Reservation: *view,
	}
	if err := uc.publisher.PublishConfirmed(ctx, event); err != nil {
		slog.Error("failed to publish reservation confirmation",
			"reservation_id", view.ID.String(),
			"error", err.Error())
	}
}
