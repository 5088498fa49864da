package queries

import (
	"time"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID                 uuid.UUID      `json:"id"`
	Product            string         `json:"product"`
	Status             string         `json:"status"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone"`
	Date               string         `json:"date"`
	Location           string         `json:"location,omitempty"`
	Units              int            `json:"units,omitempty"`
	HasChildren        bool           `json:"hasChildren"`
	GroupSize          int            `json:"groupSize,omitempty"`
	AddOns             []string       `json:"addOns"`
	CustomAddOnIDs     []string       `json:"customAddOnIds"`
	ArrivalSlot        string         `json:"arrivalSlot"`
	Notes              string         `json:"notes,omitempty"`
	Subtotal           pricing.Money  `json:"subtotal"`
	VAT                pricing.Money  `json:"vat"`
	Total              pricing.Money  `json:"total"`
	SpecialPricingName string         `json:"specialPricingName,omitempty"`
	Breakdown          []pricing.Line `json:"breakdown"`
	IsPaid             bool           `json:"isPaid"`
	PaidAt             *time.Time     `json:"paidAt,omitempty"`
	HoldExpiresAt      *time.Time     `json:"holdExpiresAt,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// ReservationListItem is the admin table row
type ReservationListItem struct {
	ID          uuid.UUID     `json:"id"`
	Product     string        `json:"product"`
	Status      string        `json:"status"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Date        string        `json:"date"`
	Location    string        `json:"location,omitempty"`
	Units       int           `json:"units,omitempty"`
	GroupSize   int           `json:"groupSize,omitempty"`
	ArrivalSlot string        `json:"arrivalSlot"`
	Total       pricing.Money `json:"total"`
	IsPaid      bool          `json:"isPaid"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// ReservationCSVRow is one line of the admin export
type ReservationCSVRow struct {
	ID                 string `csv:"id"`
	Product            string `csv:"product"`
	Status             string `csv:"status"`
	Name               string `csv:"name"`
	Email              string `csv:"email"`
	Phone              string `csv:"phone"`
	Date               string `csv:"date"`
	Location           string `csv:"location"`
	Units              int    `csv:"units"`
	GroupSize          int    `csv:"group_size"`
	ArrivalSlot        string `csv:"arrival_slot"`
	AddOns             string `csv:"add_ons"`
	Subtotal           string `csv:"subtotal"`
	VAT                string `csv:"vat"`
	Total              string `csv:"total"`
	SpecialPricingName string `csv:"special_pricing"`
	IsPaid             bool   `csv:"is_paid"`
	CreatedAt          string `csv:"created_at"`
}

type AvailabilityView struct {
	Product string `json:"product"`
	Date    string `json:"date"`
	availability.Result
}

type QuoteView struct {
	Quote        pricing.Quote       `json:"quote"`
	Availability availability.Result `json:"availability"`
}

type BlockedRangeView struct {
	ID        uuid.UUID `json:"id"`
	Product   string    `json:"product"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	req := r.Request()
	v := &ReservationView{
		ID:                 r.ID(),
		Product:            r.Product().String(),
		Status:             r.Status().String(),
		Name:               req.Customer.Name,
		Email:              req.Customer.Email,
		Phone:              req.Customer.Phone,
		Date:               req.Date.String(),
		Location:           req.Location,
		Units:              req.Units,
		HasChildren:        req.HasChildren,
		GroupSize:          req.GroupSize,
		AddOns:             nonNil(req.AddOns),
		CustomAddOnIDs:     nonNil(req.CustomAddOnIDs),
		ArrivalSlot:        req.ArrivalSlot,
		Notes:              req.Notes,
		Subtotal:           r.Subtotal(),
		VAT:                r.VAT(),
		Total:              r.Total(),
		SpecialPricingName: r.SpecialPricingName(),
		Breakdown:          r.Breakdown(),
		IsPaid:             r.IsPaid(),
		PaidAt:             r.PaidAt(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
	if !r.IsPaid() && !r.Hold().ExpiresAt.IsZero() {
		exp := r.Hold().ExpiresAt
		v.HoldExpiresAt = &exp
	}
	if v.Breakdown == nil {
		v.Breakdown = []pricing.Line{}
	}
	return v
}

func NewBlockedRangeView(r availability.BlockedRange) BlockedRangeView {
	return BlockedRangeView{
		ID:        r.ID,
		Product:   r.Product.String(),
		StartDate: r.StartDate.String(),
		EndDate:   r.EndDate.String(),
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
