package request

import (
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/pkg/errs"
)

// ReservationRequest is shared by quote and create. Field rules live in the
// domain so both endpoints answer with the same messages.
type ReservationRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Date           string   `json:"date"`
	Location       string   `json:"location,omitempty"`
	Units          int      `json:"units,omitempty"`
	HasChildren    bool     `json:"hasChildren,omitempty"`
	GroupSize      int      `json:"groupSize,omitempty"`
	AddOns         []string `json:"addOns,omitempty"`
	CustomAddOnIDs []string `json:"customAddOnIds,omitempty"`
	ArrivalSlot    string   `json:"arrivalSlot"`
	Notes          string   `json:"notes,omitempty"`
}

var ErrInvalidDate = errs.Mark(errs.New("Invalid booking date"), errs.ErrValidation)

func (r ReservationRequest) ToDomain() (reservation.Request, error) {
	var date calendar.Date
	if r.Date != "" {
		d, err := calendar.ParseDate(r.Date)
		if err != nil {
			return reservation.Request{}, ErrInvalidDate
		}
		date = d
	}
	return reservation.Request{
		Customer: reservation.Customer{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		Date:           date,
		Location:       r.Location,
		Units:          r.Units,
		HasChildren:    r.HasChildren,
		GroupSize:      r.GroupSize,
		AddOns:         r.AddOns,
		CustomAddOnIDs: r.CustomAddOnIDs,
		ArrivalSlot:    r.ArrivalSlot,
		Notes:          r.Notes,
	}, nil
}
