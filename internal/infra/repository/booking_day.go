package repository

import (
	"context"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/infra/repository/converter"
	sqlc "glamping-booking/internal/infra/sqlc/generated"
)

type BookingDayQueries interface {
	LockBookingDay(ctx context.Context, db sqlc.DBTX, arg sqlc.LockBookingDayParams) error
}

// BookingDayRepository upserts the (product, day) row so the row lock is held
// by the calling transaction until it ends.
type BookingDayRepository struct {
	queries BookingDayQueries
	db      sqlc.DBTX
}

func NewBookingDayRepository(queries BookingDayQueries, db sqlc.DBTX) *BookingDayRepository {
	return &BookingDayRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingDayRepository) Lock(ctx context.Context, product pricing.Product, date calendar.Date) error {
	err := r.queries.LockBookingDay(ctx, r.db, sqlc.LockBookingDayParams{
		Product: product.String(),
		Day:     converter.DateToPgtype(date),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to lock booking day", err)
	}
	return nil
}
