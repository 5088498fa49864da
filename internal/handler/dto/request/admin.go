package request

import (
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/pkg/errs"
	"glamping-booking/internal/usecase/commands"
	"glamping-booking/internal/usecase/shared"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type CustomAddOnRequest struct {
	Name        string        `json:"name" binding:"required,max=100"`
	Price       pricing.Money `json:"price"`
	Description string        `json:"description" binding:"max=500"`
}

func (r CustomAddOnRequest) ToDomain() pricing.CustomAddOn {
	return pricing.CustomAddOn{Name: r.Name, Price: r.Price, Description: r.Description}
}

type SpecialPeriodRequest struct {
	Name       string        `json:"name" binding:"required,max=100"`
	StartDate  string        `json:"startDate" binding:"required"`
	EndDate    string        `json:"endDate" binding:"required"`
	Amount     pricing.Money `json:"amount"`
	Multiplier float64       `json:"multiplier" binding:"gte=0"`
	Type       string        `json:"type"`
	// nil means active
	IsActive *bool `json:"isActive"`
}

func (r SpecialPeriodRequest) ToDomain(id string) (pricing.SpecialPeriod, error) {
	start, err := calendar.ParseDate(r.StartDate)
	if err != nil {
		return pricing.SpecialPeriod{}, ErrInvalidDate
	}
	end, err := calendar.ParseDate(r.EndDate)
	if err != nil {
		return pricing.SpecialPeriod{}, ErrInvalidDate
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return pricing.SpecialPeriod{
		ID:         id,
		Name:       r.Name,
		StartDate:  start,
		EndDate:    end,
		Amount:     r.Amount,
		Multiplier: r.Multiplier,
		Type:       r.Type,
		IsActive:   active,
	}, nil
}

type BlockedRangeRequest struct {
	Product   string `json:"product" binding:"required,oneof=camping barbecue"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"max=200"`
}

func (r BlockedRangeRequest) ToInput() (commands.BlockedRangeInput, error) {
	start, err := calendar.ParseDate(r.StartDate)
	if err != nil {
		return commands.BlockedRangeInput{}, ErrInvalidDate
	}
	end, err := calendar.ParseDate(r.EndDate)
	if err != nil {
		return commands.BlockedRangeInput{}, ErrInvalidDate
	}
	return commands.BlockedRangeInput{
		Product:   pricing.Product(r.Product),
		StartDate: start,
		EndDate:   end,
		Reason:    r.Reason,
	}, nil
}

// ReservationListQuery binds the admin list and export query string.
type ReservationListQuery struct {
	Product string `form:"product" binding:"omitempty,oneof=camping barbecue"`
	From    string `form:"from"`
	To      string `form:"to"`
	Paid    *bool  `form:"paid"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

func (q ReservationListQuery) ToFilter() (shared.ReservationFilter, error) {
	f := shared.ReservationFilter{
		IsPaid: q.Paid,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if q.Product != "" {
		p := pricing.Product(q.Product)
		f.Product = &p
	}
	if q.From != "" {
		d, err := calendar.ParseDate(q.From)
		if err != nil {
			return shared.ReservationFilter{}, ErrInvalidDate
		}
		f.From = d
	}
	if q.To != "" {
		d, err := calendar.ParseDate(q.To)
		if err != nil {
			return shared.ReservationFilter{}, ErrInvalidDate
		}
		f.To = d
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return shared.ReservationFilter{}, errs.Mark(errs.New("End date must not be before start date"), errs.ErrValidation)
	}
	return f, nil
}
