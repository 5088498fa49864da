package availability

import (
	"time"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// DefaultHoldTTL is how long an unpaid barbecue reservation keeps its date.
const DefaultHoldTTL = 45 * time.Minute

// Hold is a lease taken by an unpaid reservation.
type Hold struct {
	ExpiresAt time.Time
}

func NewHold(from time.Time, ttl time.Duration) Hold {
	return Hold{ExpiresAt: from.Add(ttl)}
}

func (h Hold) ActiveAt(now time.Time) bool {
	return !h.ExpiresAt.IsZero() && now.Before(h.ExpiresAt)
}

// Booking is an existing reservation as the guard sees it.
type Booking struct {
	ID          uuid.UUID
	Location    string
	Units       int
	ArrivalSlot string
	IsPaid      bool
	Hold        Hold
}

// Occupies reports whether the booking still takes its date at now. Only
// barbecue bookings carry a hold, so a pending camping booking never does.
func (b Booking) Occupies(now time.Time) bool {
	return b.IsPaid || b.Hold.ActiveAt(now)
}

// Without returns a copy of day that leaves out the booking with id.
func (d Day) Without(id uuid.UUID) Day {
	out := d
	out.Bookings = make([]Booking, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		if b.ID != id {
			out.Bookings = append(out.Bookings, b)
		}
	}
	return out
}

type BlockedRange struct {
	ID        uuid.UUID
	Product   pricing.Product
	StartDate calendar.Date
	EndDate   calendar.Date
	Reason    string
	CreatedAt time.Time
}

func (r BlockedRange) Covers(p pricing.Product, d calendar.Date) bool {
	return r.Product == p && d.Between(r.StartDate, r.EndDate)
}

const defaultBlockedReason = "These dates are unavailable for booking"

func findBlock(ranges []BlockedRange, p pricing.Product, d calendar.Date) (BlockedRange, bool) {
	for _, r := range ranges {
		if r.Covers(p, d) {
			return r, true
		}
	}
	return BlockedRange{}, false
}

func blockReason(r BlockedRange) string {
	if r.Reason == "" {
		return defaultBlockedReason
	}
	return r.Reason
}
