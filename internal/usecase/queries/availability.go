package queries

import (
	"context"

	"glamping-booking/internal/domain/availability"
	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/domain/reservation"
	"glamping-booking/internal/usecase/shared"
)

type AvailabilityQueries interface {
	Availability(ctx context.Context, product pricing.Product, date calendar.Date) (*AvailabilityView, error)
	// Quote prices a request and runs the guard without writing anything.
	Quote(ctx context.Context, product pricing.Product, req reservation.Request) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	calendar *shared.BookingCalendar
}

func NewAvailabilityQueries(uow shared.UnitOfWork, factory *reservation.Factory, cal *shared.BookingCalendar) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, factory: factory, calendar: cal}
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, product pricing.Product, date calendar.Date) (*AvailabilityView, error) {
	settings, err := shared.LoadSettings(ctx, q.uow.Reads().Settings(), product)
	if err != nil {
		return nil, err
	}

	var result availability.Result
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		day, derr := shared.LoadDay(ctx, tx, product, date, q.calendar)
		if derr != nil {
			return derr
		}
		result = shared.CheckDate(settings, day)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AvailabilityView{Product: product.String(), Date: date.String(), Result: result}, nil
}

func (q *availabilityQueriesImpl) Quote(ctx context.Context, product pricing.Product, req reservation.Request) (*QuoteView, error) {
	req = req.Normalized(product)
	if err := req.Validate(product); err != nil {
		return nil, err
	}

	settings, err := shared.LoadSettings(ctx, q.uow.Reads().Settings(), product)
	if err != nil {
		return nil, err
	}
	quote, err := q.factory.Quote(settings, req)
	if err != nil {
		return nil, err
	}

	var result availability.Result
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		day, derr := shared.LoadDay(ctx, tx, product, req.Date, q.calendar)
		if derr != nil {
			return derr
		}
		result = shared.CheckRequest(settings, day, req)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &QuoteView{Quote: quote, Availability: result}, nil
}
