package commands

import (
	"context"
	"time"

	"glamping-booking/internal/usecase/queries"
)

const EventReservationConfirmed = "reservation.confirmed"

// ReservationConfirmedEvent carries the final breakdown to the notifier.
type ReservationConfirmedEvent struct {
	Type        string                  `json:"type"`
	OccurredAt  time.Time               `json:"occurredAt"`
	Reservation queries.ReservationView `json:"reservation"`
}

// ConfirmationPublisher hands confirmed reservations to the notification side.
type ConfirmationPublisher interface {
	PublishConfirmed(ctx context.Context, event ReservationConfirmedEvent) error
}
