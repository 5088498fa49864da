package converter

import (
	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/pricing"
	sqlc "glamping-booking/internal/infra/sqlc/generated"
	"glamping-booking/internal/pkg/pgconv"
)

func BlockedRangeToInfra(r availability.BlockedRange) sqlc.CreateBlockedRangeParams {
	return sqlc.CreateBlockedRangeParams{
		ID:        r.ID,
		Product:   r.Product.String(),
		StartDate: DateToPgtype(r.StartDate),
		EndDate:   DateToPgtype(r.EndDate),
		Reason:    r.Reason,
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func BlockedRangeFromInfra(row sqlc.BlockedRange) availability.BlockedRange {
	return availability.BlockedRange{
		ID:        row.ID,
		Product:   pricing.Product(row.Product),
		StartDate: DateFromPgtype(row.StartDate),
		EndDate:   DateFromPgtype(row.EndDate),
		Reason:    row.Reason,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
