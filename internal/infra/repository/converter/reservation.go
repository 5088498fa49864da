package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	sqlc "glamping-booking/internal/infra/sqlc/generated"
	"glamping-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	rec := res.Record()
	req := rec.Request

	breakdown := rec.Breakdown
	if breakdown == nil {
		breakdown = []pricing.Line{}
	}
	rawBreakdown, err := json.Marshal(breakdown)
	if err != nil {
		return sqlc.CreateReservationParams{}, fmt.Errorf("encode breakdown: %w", err)
	}

	return sqlc.CreateReservationParams{
		ID:                 rec.ID,
		Product:            rec.Product.String(),
		CustomerName:       req.Customer.Name,
		CustomerEmail:      req.Customer.Email,
		CustomerPhone:      req.Customer.Phone,
		BookingDate:        DateToPgtype(req.Date),
		Location:           req.Location,
		Units:              toInt32(req.Units),
		HasChildren:        req.HasChildren,
		GroupSize:          toInt32(req.GroupSize),
		AddOns:             nonNil(req.AddOns),
		CustomAddOnIds:     nonNil(req.CustomAddOnIDs),
		ArrivalSlot:        req.ArrivalSlot,
		Notes:              req.Notes,
		SubtotalCents:      rec.Subtotal.Cents(),
		VatCents:           rec.VAT.Cents(),
		TotalCents:         rec.Total.Cents(),
		SpecialPricingName: rec.SpecialPricingName,
		Breakdown:          rawBreakdown,
		IsPaid:             rec.IsPaid,
		PaidAt:             pgconv.TimePtrToPgtype(rec.PaidAt),
		HoldExpiresAt:      pgconv.OptionalTimeToPgtype(rec.HoldExpiresAt),
		CreatedAt:          pgconv.TimeToPgtype(rec.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(rec.UpdatedAt),
	}, nil
}

func ReservationFromInfra(row sqlc.Reservation) (*reservation.Reservation, error) {
	var breakdown []pricing.Line
	if len(row.Breakdown) > 0 {
		if err := json.Unmarshal(row.Breakdown, &breakdown); err != nil {
			return nil, fmt.Errorf("decode breakdown of %s: %w", row.ID, err)
		}
	}

	return reservation.Reconstruct(reservation.Record{
		ID:      row.ID,
		Product: pricing.Product(row.Product),
		Request: reservation.Request{
			Customer: reservation.Customer{
				Name:  row.CustomerName,
				Email: row.CustomerEmail,
				Phone: row.CustomerPhone,
			},
			Date:           DateFromPgtype(row.BookingDate),
			Location:       row.Location,
			Units:          int(row.Units),
			HasChildren:    row.HasChildren,
			GroupSize:      int(row.GroupSize),
			AddOns:         row.AddOns,
			CustomAddOnIDs: row.CustomAddOnIds,
			ArrivalSlot:    row.ArrivalSlot,
			Notes:          row.Notes,
		},
		Subtotal:           pricing.NewMoney(row.SubtotalCents),
		VAT:                pricing.NewMoney(row.VatCents),
		Total:              pricing.NewMoney(row.TotalCents),
		SpecialPricingName: row.SpecialPricingName,
		Breakdown:          breakdown,
		IsPaid:             row.IsPaid,
		PaidAt:             pgconv.TimePtrFromPgtype(row.PaidAt),
		HoldExpiresAt:      pgconv.TimeFromPgtype(row.HoldExpiresAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func DateToPgtype(d calendar.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) calendar.Date {
	t := pgconv.DateFromPgtype(pd)
	if t.IsZero() {
		return calendar.Date{}
	}
	return calendar.DateOf(t, time.UTC)
}

func toInt32(n int) int32 {
	if n > 1<<31-1 || n < -(1<<31) {
		panic(fmt.Sprintf("value out of int32 range: %d", n))
	}
	return int32(n)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
