package repository

import (
	"context"
	"time"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/infra/repository/converter"
	sqlc "glamping-booking/internal/infra/sqlc/generated"
	"glamping-booking/internal/pkg/pgconv"
	"glamping-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	ListReservationsByDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByDateParams) ([]sqlc.Reservation, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.Reservation, error)
	MarkReservationPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationPaidParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	params, err := converter.ReservationToInfra(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err)
	}
	if err := r.queries.CreateReservation(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) ListByDate(ctx context.Context, product pricing.Product, date calendar.Date) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByDate(ctx, r.db, sqlc.ListReservationsByDateParams{
		Product:     product.String(),
		BookingDate: converter.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date", err)
	}
	return fromRows(rows)
}

func (r *ReservationRepository) List(ctx context.Context, filter shared.ReservationFilter) ([]*reservation.Reservation, error) {
	params := sqlc.ListReservationsParams{
		DateFrom: converter.DateToPgtype(filter.From),
		DateTo:   converter.DateToPgtype(filter.To),
		IsPaid:   pgconv.BoolPtrToPgtype(filter.IsPaid),
		Limit:    int32(filter.Limit),  // #nosec G115 -- bounded by the query layer
		Offset:   int32(filter.Offset), // #nosec G115 -- bounded by the query layer
	}
	if filter.Product != nil {
		params.Product = pgtype.Text{String: filter.Product.String(), Valid: true}
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return fromRows(rows)
}

func (r *ReservationRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	n, err := r.queries.MarkReservationPaid(ctx, r.db, sqlc.MarkReservationPaidParams{
		ID:     id,
		PaidAt: pgconv.TimeToPgtype(paidAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark reservation paid", err)
	}
	return n == 1, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func fromRows(rows []sqlc.Reservation) ([]*reservation.Reservation, error) {
	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation", err)
		}
		result = append(result, res)
	}
	return result, nil
}
