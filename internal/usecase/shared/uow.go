package shared

import (
	"context"
	"time"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Pool-backed repositories for single statements outside a transaction
	Reads() Tx
}

type Tx interface {
	Reservations() ReservationRepository
	Settings() SettingsRepository
	BlockedRanges() BlockedRangeRepository
	BookingDays() BookingDayRepository
}

type ReservationFilter struct {
	Product *pricing.Product
	From    calendar.Date
	To      calendar.Date
	IsPaid  *bool
	Limit   int
	Offset  int
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ListByDate returns the reservations of one product and day in creation order.
	ListByDate(ctx context.Context, product pricing.Product, date calendar.Date) ([]*reservation.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]*reservation.Reservation, error)
	// MarkPaid flips is_paid only when it is still false and reports whether it did.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SettingsRepository interface {
	LoadDocument(ctx context.Context, product pricing.Product) (map[string]any, error)
	// LockDocument loads the document with a row lock held until commit.
	LockDocument(ctx context.Context, product pricing.Product) (map[string]any, error)
	InsertDefault(ctx context.Context, product pricing.Product, doc map[string]any) error
	Save(ctx context.Context, product pricing.Product, doc map[string]any, updatedAt time.Time) error
}

type BlockedRangeRepository interface {
	Create(ctx context.Context, r availability.BlockedRange) error
	ListCovering(ctx context.Context, product pricing.Product, date calendar.Date) ([]availability.BlockedRange, error)
	List(ctx context.Context, product *pricing.Product) ([]availability.BlockedRange, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingDayRepository interface {
	// Lock serializes writers of one (product, day) until the transaction ends.
	Lock(ctx context.Context, product pricing.Product, date calendar.Date) error
}
