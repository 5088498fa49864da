package shared

import (
	"time"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/pkg/clock"
)

// BookingCalendar resolves "today" in the business time zone.
type BookingCalendar struct {
	Clock    clock.Clock
	Location *time.Location
	HoldTTL  time.Duration
}

func NewBookingCalendar(clk clock.Clock, loc *time.Location, holdTTL time.Duration) *BookingCalendar {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingCalendar{Clock: clk, Location: loc, HoldTTL: holdTTL}
}

func (c *BookingCalendar) Now() time.Time {
	return c.Clock.Now()
}

func (c *BookingCalendar) Today() calendar.Date {
	return calendar.DateOf(c.Clock.Now(), c.Location)
}
