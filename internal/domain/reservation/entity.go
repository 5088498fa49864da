package reservation

import (
	"errors"
	"slices"
	"time"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrAlreadyPaid   = errors.New("reservation is already paid")
	ErrNegativePrice = errors.New("price cannot be negative")
)

type Reservation struct {
	id                 uuid.UUID
	product            pricing.Product
	request            Request
	subtotal           pricing.Money
	vat                pricing.Money
	total              pricing.Money
	specialPricingName string
	breakdown          []pricing.Line
	isPaid             bool
	paidAt             *time.Time
	hold               availability.Hold
	createdAt          time.Time
	updatedAt          time.Time
}

// New starts a pending reservation priced by quote. A barbecue reservation
// keeps its date for holdTTL while payment is in flight; a pending camping
// reservation holds nothing until it is paid.
func New(product pricing.Product, req Request, quote pricing.Quote, now time.Time, holdTTL time.Duration) (*Reservation, error) {
	if quote.Total.IsNegative() {
		return nil, ErrNegativePrice
	}
	var hold availability.Hold
	if product == pricing.ProductBarbecue {
		hold = availability.NewHold(now, holdTTL)
	}
	return &Reservation{
		id:                 uuid.New(),
		product:            product,
		request:            req,
		subtotal:           quote.Subtotal,
		vat:                quote.VAT,
		total:              quote.Total,
		specialPricingName: quote.SpecialPricingName,
		breakdown:          slices.Clone(quote.Lines),
		hold:               hold,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// Record is the persisted shape of a reservation.
type Record struct {
	ID                 uuid.UUID
	Product            pricing.Product
	Request            Request
	Subtotal           pricing.Money
	VAT                pricing.Money
	Total              pricing.Money
	SpecialPricingName string
	Breakdown          []pricing.Line
	IsPaid             bool
	PaidAt             *time.Time
	HoldExpiresAt      time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(r Record) *Reservation {
	return &Reservation{
		id:                 r.ID,
		product:            r.Product,
		request:            r.Request,
		subtotal:           r.Subtotal,
		vat:                r.VAT,
		total:              r.Total,
		specialPricingName: r.SpecialPricingName,
		breakdown:          r.Breakdown,
		isPaid:             r.IsPaid,
		paidAt:             r.PaidAt,
		hold:               availability.Hold{ExpiresAt: r.HoldExpiresAt},
		createdAt:          r.CreatedAt,
		updatedAt:          r.UpdatedAt,
	}
}

func (r *Reservation) Record() Record {
	return Record{
		ID:                 r.id,
		Product:            r.product,
		Request:            r.request,
		Subtotal:           r.subtotal,
		VAT:                r.vat,
		Total:              r.total,
		SpecialPricingName: r.specialPricingName,
		Breakdown:          r.breakdown,
		IsPaid:             r.isPaid,
		PaidAt:             r.paidAt,
		HoldExpiresAt:      r.hold.ExpiresAt,
		CreatedAt:          r.createdAt,
		UpdatedAt:          r.updatedAt,
	}
}

// MarkPaid confirms the reservation. It succeeds once.
func (r *Reservation) MarkPaid(now time.Time) error {
	if r.isPaid {
		return ErrAlreadyPaid
	}
	r.isPaid = true
	r.paidAt = &now
	r.updatedAt = now
	return nil
}

func (r *Reservation) Status() Status {
	if r.isPaid {
		return StatusConfirmed
	}
	return StatusPending
}

// AsBooking is the view the availability guard works with.
func (r *Reservation) AsBooking() availability.Booking {
	return availability.Booking{
		ID:          r.id,
		Location:    r.request.Location,
		Units:       r.request.Units,
		ArrivalSlot: r.request.ArrivalSlot,
		IsPaid:      r.isPaid,
		Hold:        r.hold,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) Product() pricing.Product     { return r.product }
func (r *Reservation) Request() Request             { return r.request }
func (r *Reservation) Customer() Customer           { return r.request.Customer }
func (r *Reservation) Date() calendar.Date          { return r.request.Date }
func (r *Reservation) Subtotal() pricing.Money      { return r.subtotal }
func (r *Reservation) VAT() pricing.Money           { return r.vat }
func (r *Reservation) Total() pricing.Money         { return r.total }
func (r *Reservation) SpecialPricingName() string   { return r.specialPricingName }
func (r *Reservation) Breakdown() []pricing.Line    { return r.breakdown }
func (r *Reservation) IsPaid() bool                 { return r.isPaid }
func (r *Reservation) PaidAt() *time.Time           { return r.paidAt }
func (r *Reservation) Hold() availability.Hold      { return r.hold }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
