package availability

import (
	"fmt"
	"slices"
	"time"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
)

// Day is everything the guard knows about one date at evaluation time.
// Bookings are expected in creation order; the first confirmed camping
// booking decides the location lock.
type Day struct {
	Date     calendar.Date
	Today    calendar.Date
	Now      time.Time
	Bookings []Booking
	Blocked  []BlockedRange
}

type CampingPolicy struct {
	MaxUnitsPerDay     int
	MaxUnitsPerRequest int
	MaxBookingsPerDay  int
	LeadTimeDays       int
}

func CampingPolicyFrom(s *pricing.CampingSettings) CampingPolicy {
	return CampingPolicy{
		MaxUnitsPerDay:     s.MaxUnitsPerDay,
		MaxUnitsPerRequest: s.MaxUnitsPerRequest,
		MaxBookingsPerDay:  s.MaxBookingsPerDay,
		LeadTimeDays:       s.LeadTimeDays,
	}
}

type CampingRequest struct {
	Location    string
	Units       int
	ArrivalSlot string
}

const wadiMinimumUnits = 2

// CheckCampingDate evaluates only the rules that do not depend on a request.
func CheckCampingDate(p CampingPolicy, day Day) Result {
	c := campingConstraints(p, day)
	if r, done := campingCalendarRules(p, day, c); done {
		return r
	}
	if c.RemainingUnits == 0 {
		return rejected("This date is fully booked", c)
	}
	if c.BookingsLeft == 0 {
		return rejected(maxBookingsReason(p), c)
	}
	return available(c)
}

// CheckCampingRequest runs the full camping rule chain for a request.
func CheckCampingRequest(p CampingPolicy, day Day, req CampingRequest) Result {
	c := campingConstraints(p, day)
	if req.Location == pricing.LocationWadi {
		c.MinimumUnits = wadiMinimumUnits
	}
	if r, done := campingCalendarRules(p, day, c); done {
		return r
	}

	if req.Units < 1 || req.Units > p.MaxUnitsPerRequest {
		return rejected(fmt.Sprintf("Tent count must be between 1 and %d", p.MaxUnitsPerRequest), c)
	}
	return campingOccupancyRules(p, c, req)
}

// CheckCampingConfirmation re-checks a pending booking against the bookings
// confirmed since it was made. Blocked ranges and lead time were settled when
// it was created and are not applied again. day must not contain the booking
// being confirmed.
func CheckCampingConfirmation(p CampingPolicy, day Day, req CampingRequest) Result {
	return campingOccupancyRules(p, campingConstraints(p, day), req)
}

func campingOccupancyRules(p CampingPolicy, c Constraints, req CampingRequest) Result {
	if c.LockedLocation != "" && c.LockedLocation != req.Location {
		return rejected(fmt.Sprintf("This date is already booked at %s. Only %s is available on this date", c.LockedLocation, c.LockedLocation), c)
	}
	if req.Units > c.RemainingUnits {
		return rejected(fmt.Sprintf("Only %d tent(s) remaining for this date", c.RemainingUnits), c)
	}
	if c.BookingsLeft == 0 {
		return rejected(maxBookingsReason(p), c)
	}
	if slices.Contains(c.TakenSlots, req.ArrivalSlot) {
		return rejected(fmt.Sprintf("Arrival time %s is already taken for this date", req.ArrivalSlot), c)
	}
	return available(c)
}

func campingCalendarRules(p CampingPolicy, day Day, c Constraints) (Result, bool) {
	if b, ok := findBlock(day.Blocked, pricing.ProductCamping, day.Date); ok {
		return blocked(blockReason(b), c), true
	}
	if day.Date.Before(day.Today.AddDays(p.LeadTimeDays)) {
		return rejected(fmt.Sprintf("Date is too soon. Bookings must be made at least %d days in advance", p.LeadTimeDays), c), true
	}
	return Result{}, false
}

func maxBookingsReason(p CampingPolicy) string {
	return fmt.Sprintf("This date already has the maximum of %d bookings", p.MaxBookingsPerDay)
}

func campingConstraints(p CampingPolicy, day Day) Constraints {
	var (
		c     Constraints
		used  int
		count int
	)
	c.TakenSlots = []string{}
	for _, b := range day.Bookings {
		// pending camping bookings hold nothing until paid
		if !b.IsPaid {
			continue
		}
		if c.LockedLocation == "" {
			c.LockedLocation = b.Location
		}
		used += b.Units
		count++
		if b.ArrivalSlot != "" && !slices.Contains(c.TakenSlots, b.ArrivalSlot) {
			c.TakenSlots = append(c.TakenSlots, b.ArrivalSlot)
		}
	}
	slices.Sort(c.TakenSlots)
	c.FreeSlots = freeSlots(CampingSlots, c.TakenSlots)
	c.RemainingUnits = max(0, p.MaxUnitsPerDay-used)
	c.BookingsLeft = max(0, p.MaxBookingsPerDay-count)
	if c.LockedLocation == pricing.LocationWadi {
		c.MinimumUnits = wadiMinimumUnits
	}
	return c
}

// CheckBarbecueDate applies the single-booking-per-day rule. Pending
// reservations count while their hold is active.
func CheckBarbecueDate(day Day) Result {
	c := Constraints{TakenSlots: []string{}, FreeSlots: []string{BarbecueSlot}, BookingsLeft: 1}
	for _, b := range day.Bookings {
		if b.Occupies(day.Now) {
			c = Constraints{TakenSlots: []string{BarbecueSlot}, FreeSlots: []string{}}
			break
		}
	}

	if b, ok := findBlock(day.Blocked, pricing.ProductBarbecue, day.Date); ok {
		return blocked(blockReason(b), c)
	}
	if day.Date.Before(day.Today) {
		return rejected("Date is in the past", c)
	}
	if c.BookingsLeft == 0 {
		return rejected("This date is already booked", c)
	}
	return available(c)
}

// CheckBarbecueConfirmation reports whether another reservation took the
// date while this one was unpaid. day must not contain the booking being
// confirmed.
func CheckBarbecueConfirmation(day Day) Result {
	for _, b := range day.Bookings {
		if b.Occupies(day.Now) {
			return rejected("This date is already booked", Constraints{TakenSlots: []string{BarbecueSlot}, FreeSlots: []string{}})
		}
	}
	return available(Constraints{TakenSlots: []string{}, FreeSlots: []string{BarbecueSlot}, BookingsLeft: 1})
}

// CheckBarbecueRequest adds the fixed arrival slot to the date rules.
func CheckBarbecueRequest(day Day, arrivalSlot string) Result {
	r := CheckBarbecueDate(day)
	if !r.OK() {
		return r
	}
	if arrivalSlot != "" && arrivalSlot != BarbecueSlot {
		return rejected(fmt.Sprintf("Barbecue arrival time is fixed at %s", BarbecueSlot), r.Constraints)
	}
	return r
}
