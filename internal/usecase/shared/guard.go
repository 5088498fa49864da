package shared

import (
	"context"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/pkg/errs"
)

// LoadDay collects what the availability guard needs for one date. The read
// path and the write path both go through it.
func LoadDay(ctx context.Context, tx Tx, product pricing.Product, date calendar.Date, cal *BookingCalendar) (availability.Day, error) {
	existing, err := tx.Reservations().ListByDate(ctx, product, date)
	if err != nil {
		return availability.Day{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	blocked, err := tx.BlockedRanges().ListCovering(ctx, product, date)
	if err != nil {
		return availability.Day{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	bookings := make([]availability.Booking, 0, len(existing))
	for _, r := range existing {
		bookings = append(bookings, r.AsBooking())
	}
	return availability.Day{
		Date:     date,
		Today:    cal.Today(),
		Now:      cal.Now(),
		Bookings: bookings,
		Blocked:  blocked,
	}, nil
}

func CheckDate(settings pricing.Settings, day availability.Day) availability.Result {
	if s, ok := settings.(*pricing.CampingSettings); ok {
		return availability.CheckCampingDate(availability.CampingPolicyFrom(s), day)
	}
	return availability.CheckBarbecueDate(day)
}

func CheckRequest(settings pricing.Settings, day availability.Day, req reservation.Request) availability.Result {
	if s, ok := settings.(*pricing.CampingSettings); ok {
		return availability.CheckCampingRequest(availability.CampingPolicyFrom(s), day, req.CampingRequest())
	}
	return availability.CheckBarbecueRequest(day, req.ArrivalSlot)
}

// CheckConfirmation decides whether r can still be confirmed on its date.
// day may include r itself; it is left out before the check.
func CheckConfirmation(settings pricing.Settings, day availability.Day, r *reservation.Reservation) availability.Result {
	others := day.Without(r.ID())
	if s, ok := settings.(*pricing.CampingSettings); ok {
		return availability.CheckCampingConfirmation(availability.CampingPolicyFrom(s), others, r.Request().CampingRequest())
	}
	return availability.CheckBarbecueConfirmation(others)
}
