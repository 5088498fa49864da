package reservation

import (
	"fmt"
	"slices"
	"strings"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/pkg/errs"
)

const maxNotesLength = 1000

// Request is a reservation as submitted by a customer, before any check.
// Location, Units and HasChildren apply to camping; GroupSize to barbecue.
type Request struct {
	Customer       Customer
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

func validationError(msg string) error {
	return errs.Mark(errs.New(msg), errs.ErrValidation)
}

// Normalized trims free text, drops duplicate add-ons and fills the fixed
// barbecue arrival slot.
func (r Request) Normalized(p pricing.Product) Request {
	out := r
	out.Customer = r.Customer.normalized()
	out.Location = strings.TrimSpace(r.Location)
	out.ArrivalSlot = strings.TrimSpace(r.ArrivalSlot)
	out.Notes = strings.TrimSpace(r.Notes)
	out.AddOns = compactIDs(r.AddOns)
	out.CustomAddOnIDs = compactIDs(r.CustomAddOnIDs)
	if p == pricing.ProductBarbecue && out.ArrivalSlot == "" {
		out.ArrivalSlot = availability.BarbecueSlot
	}
	return out
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Validate checks request shape. Business rules that depend on other
// reservations belong to the availability guard.
func (r Request) Validate(p pricing.Product) error {
	if !p.IsValid() {
		return validationError("Unknown product")
	}
	if err := r.Customer.validate(); err != nil {
		return err
	}
	if r.Date.IsZero() {
		return validationError("Date is required")
	}
	if len(r.Notes) > maxNotesLength {
		return validationError(fmt.Sprintf("Notes must be at most %d characters", maxNotesLength))
	}

	switch p {
	case pricing.ProductCamping:
		if !pricing.IsKnownLocation(r.Location) {
			return validationError("Please select a valid location")
		}
		if r.Units < 1 {
			return validationError("Number of tents must be at least 1")
		}
		if !availability.IsCampingSlot(r.ArrivalSlot) {
			return validationError("Please select a valid arrival time")
		}
	case pricing.ProductBarbecue:
		if !pricing.IsGroupTier(r.GroupSize) {
			return validationError(fmt.Sprintf("Group size must be one of %s", joinInts(pricing.GroupTiers)))
		}
		if r.ArrivalSlot != availability.BarbecueSlot {
			return validationError(fmt.Sprintf("Barbecue arrival time is fixed at %s", availability.BarbecueSlot))
		}
	}

	for _, a := range r.AddOns {
		if !pricing.IsFixedAddOn(a) {
			return validationError(fmt.Sprintf("Unknown add-on: %s", a))
		}
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func (r Request) CampingInput() pricing.CampingInput {
	return pricing.CampingInput{
		Date:           r.Date,
		Location:       r.Location,
		Units:          r.Units,
		HasChildren:    r.HasChildren,
		AddOns:         r.AddOns,
		CustomAddOnIDs: r.CustomAddOnIDs,
	}
}

func (r Request) BarbecueInput() pricing.BarbecueInput {
	return pricing.BarbecueInput{
		Date:           r.Date,
		GroupSize:      r.GroupSize,
		AddOns:         r.AddOns,
		CustomAddOnIDs: r.CustomAddOnIDs,
	}
}

func (r Request) CampingRequest() availability.CampingRequest {
	return availability.CampingRequest{
		Location:    r.Location,
		Units:       r.Units,
		ArrivalSlot: r.ArrivalSlot,
	}
}
