package repository

import (
	"context"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/infra"
	"glamping-booking/internal/infra/repository/converter"
	sqlc "glamping-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockedRangeQueries interface {
	CreateBlockedRange(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockedRangeParams) error
	ListBlockedRangesCovering(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedRangesCoveringParams) ([]sqlc.BlockedRange, error)
	ListBlockedRanges(ctx context.Context, db sqlc.DBTX, product pgtype.Text) ([]sqlc.BlockedRange, error)
	DeleteBlockedRange(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BlockedRangeRepository struct {
	queries BlockedRangeQueries
	db      sqlc.DBTX
}

func NewBlockedRangeRepository(queries BlockedRangeQueries, db sqlc.DBTX) *BlockedRangeRepository {
	return &BlockedRangeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedRangeRepository) Create(ctx context.Context, br availability.BlockedRange) error {
	if err := r.queries.CreateBlockedRange(ctx, r.db, converter.BlockedRangeToInfra(br)); err != nil {
		return infra.WrapRepoErr("failed to create blocked range", err)
	}
	return nil
}

func (r *BlockedRangeRepository) ListCovering(ctx context.Context, product pricing.Product, date calendar.Date) ([]availability.BlockedRange, error) {
	rows, err := r.queries.ListBlockedRangesCovering(ctx, r.db, sqlc.ListBlockedRangesCoveringParams{
		Product: product.String(),
		Day:     converter.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked ranges for date", err)
	}
	return blockedRangesFromRows(rows), nil
}

func (r *BlockedRangeRepository) List(ctx context.Context, product *pricing.Product) ([]availability.BlockedRange, error) {
	var filter pgtype.Text
	if product != nil {
		filter = pgtype.Text{String: product.String(), Valid: true}
	}
	rows, err := r.queries.ListBlockedRanges(ctx, r.db, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked ranges", err)
	}
	return blockedRangesFromRows(rows), nil
}

func (r *BlockedRangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBlockedRange(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked range", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("blocked range not found", nil, infra.KindNotFound)
	}
	return nil
}

func blockedRangesFromRows(rows []sqlc.BlockedRange) []availability.BlockedRange {
	result := make([]availability.BlockedRange, 0, len(rows))
	for _, row := range rows {
		result = append(result, converter.BlockedRangeFromInfra(row))
	}
	return result
}
