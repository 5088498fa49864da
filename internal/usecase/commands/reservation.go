package commands

import (
	"context"
	"log/slog"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/queries"
	"glamping-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	Create(ctx context.Context, product pricing.Product, req reservation.Request) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	calendar *shared.BookingCalendar
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, cal *shared.BookingCalendar) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, factory: factory, calendar: cal}
}

// Create validates, prices and stores a pending reservation. The guard runs
// again under the per-day lock so concurrent requests cannot both take the
// last unit.
func (uc *reservationCommandsImpl) Create(ctx context.Context, product pricing.Product, req reservation.Request) (*queries.ReservationView, error) {
	req = req.Normalized(product)
	if err := req.Validate(product); err != nil {
		return nil, err
	}

	settings, err := shared.LoadSettings(ctx, uc.uow.Reads().Settings(), product)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.BookingDays().Lock(ctx, product, req.Date); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		day, derr := shared.LoadDay(ctx, tx, product, req.Date, uc.calendar)
		if derr != nil {
			return derr
		}
		if derr = shared.CheckRequest(settings, day, req).Err(); derr != nil {
			return derr
		}

		r, _, derr := uc.factory.CreateReservation(settings, req)
		if derr != nil {
			if errs.Is(derr, reservation.ErrNegativePrice) {
				return errs.Mark(derr, errs.ErrValidation)
			}
			return derr
		}
		if derr = tx.Reservations().Create(ctx, r); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", created.ID().String(),
		"product", product.String(),
		"date", req.Date.String(),
		"total", created.Total().String())

	return queries.NewReservationView(created), nil
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
