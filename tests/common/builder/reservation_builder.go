//go:build unit || e2e

package builder

import (
	"time"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	reqdto "glamping-booking/internal/handler/dto/request"
)

type ReservationBuilder struct {
	Product        pricing.Product
	Name           string
	Email          string
	Phone          string
	Date           calendar.Date
	Location       string
	Units          int
	HasChildren    bool
	GroupSize      int
	AddOns         []string
	CustomAddOnIDs []string
	ArrivalSlot    string
	Notes          string
}

// NewCampingBuilder returns a valid camping request one week from now.
func NewCampingBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Product:     pricing.ProductCamping,
		Name:        "Test Guest",
		Email:       "guest@example.com",
		Phone:       "+971 50 123 4567",
		Date:        calendar.DateOf(time.Now(), time.UTC).AddDays(7),
		Location:    pricing.LocationDesert,
		Units:       2,
		ArrivalSlot: availability.CampingSlots[0],
	}
}

func NewBarbecueBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Product:     pricing.ProductBarbecue,
		Name:        "Test Guest",
		Email:       "guest@example.com",
		Phone:       "+971 50 123 4567",
		Date:        calendar.DateOf(time.Now(), time.UTC).AddDays(7),
		GroupSize:   10,
		ArrivalSlot: availability.BarbecueSlot,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() reservation.Request {
	return reservation.Request{
		Customer:       reservation.Customer{Name: b.Name, Email: b.Email, Phone: b.Phone},
		Date:           b.Date,
		Location:       b.Location,
		Units:          b.Units,
		HasChildren:    b.HasChildren,
		GroupSize:      b.GroupSize,
		AddOns:         b.AddOns,
		CustomAddOnIDs: b.CustomAddOnIDs,
		ArrivalSlot:    b.ArrivalSlot,
		Notes:          b.Notes,
	}
}

func (b *ReservationBuilder) BuildDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Date:           b.Date.String(),
		Location:       b.Location,
		Units:          b.Units,
		HasChildren:    b.HasChildren,
		GroupSize:      b.GroupSize,
		AddOns:         b.AddOns,
		CustomAddOnIDs: b.CustomAddOnIDs,
		ArrivalSlot:    b.ArrivalSlot,
		Notes:          b.Notes,
	}
}

// BuildReservation creates a pending reservation priced with default settings.
func (b *ReservationBuilder) BuildReservation(now time.Time) *reservation.Reservation {
	req := b.BuildDomain()
	var q pricing.Quote
	if b.Product == pricing.ProductCamping {
		q = pricing.QuoteCamping(pricing.DefaultCampingSettings(), req.CampingInput())
	} else {
		q = pricing.QuoteBarbecue(pricing.DefaultBarbecueSettings(), req.BarbecueInput())
	}
	r, err := reservation.New(b.Product, req, q, now, availability.DefaultHoldTTL)
	if err != nil {
		panic(err)
	}
	return r
}
