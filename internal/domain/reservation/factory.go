package reservation

import (
	"fmt"
	"time"

	"glamping-booking/internal/domain/pricing"
	"glamping-booking/internal/pkg/clock"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator pricing.PriceCalculator
	HoldTTL         time.Duration
}

func NewFactory(clock clock.Clock, priceCalculator pricing.PriceCalculator, holdTTL time.Duration) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		HoldTTL:         holdTTL,
	}
}

// Quote prices req against the settings snapshot. Custom add-ons that are
// not in the catalog are rejected here; recomputation of stored
// reservations goes through pricing directly and tolerates them.
func (f *Factory) Quote(settings pricing.Settings, req Request) (pricing.Quote, error) {
	for _, id := range req.CustomAddOnIDs {
		if _, ok := settings.CatalogRef().FindCustomAddOn(id); !ok {
			return pricing.Quote{}, validationError(fmt.Sprintf("Selected add-on is no longer available: %s", id))
		}
	}

	switch s := settings.(type) {
	case *pricing.CampingSettings:
		return f.PriceCalculator.QuoteCamping(s, req.CampingInput()), nil
	case *pricing.BarbecueSettings:
		return f.PriceCalculator.QuoteBarbecue(s, req.BarbecueInput()), nil
	default:
		return pricing.Quote{}, pricing.ErrUnknownProduct
	}
}

func (f *Factory) CreateReservation(settings pricing.Settings, req Request) (*Reservation, pricing.Quote, error) {
	quote, err := f.Quote(settings, req)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	r, err := New(settings.Product(), req, quote, f.Clock.Now(), f.HoldTTL)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	return r, quote, nil
}
