package pricing

import (
	"errors"
	"slices"
	"strings"

	"glamping-booking/internal/domain/calendar"
	"glamping-booking/internal/pkg/errs"
)

var (
	ErrInvalidSettings      = errors.New("invalid pricing settings")
	ErrCatalogItemNotFound  = errors.New("catalog item not found")
	ErrDuplicateCatalogItem = errors.New("catalog item already exists")
)

type LocationRate struct {
	WeekdayRate Money `json:"weekdayRate"`
	WeekendRate Money `json:"weekendRate"`
	Surcharge   Money `json:"surcharge"`
}

type CustomAddOn struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       Money  `json:"price"`
	Description string `json:"description,omitempty"`
}

// SpecialPeriod adjusts prices between two dates, inclusive. Camping applies
// Multiplier to the base cost; barbecue adds Amount, which may be negative.
type SpecialPeriod struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	StartDate  calendar.Date `json:"startDate"`
	EndDate    calendar.Date `json:"endDate"`
	Amount     Money         `json:"amount"`
	Multiplier float64       `json:"multiplier"`
	Type       string        `json:"type,omitempty"`
	IsActive   bool          `json:"isActive"`
}

func (p SpecialPeriod) Covers(d calendar.Date) bool {
	return p.IsActive && d.Between(p.StartDate, p.EndDate)
}

func (p SpecialPeriod) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errs.Mark(errs.New("special period name is required"), ErrInvalidSettings)
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return errs.Mark(errs.New("special period dates are required"), ErrInvalidSettings)
	}
	if p.EndDate.Before(p.StartDate) {
		return errs.Mark(errs.New("special period ends before it starts"), ErrInvalidSettings)
	}
	return nil
}

// Catalog holds the settings both products share.
type Catalog struct {
	AddOnPrices    map[string]Money `json:"addOnPrices"`
	CustomAddOns   []CustomAddOn    `json:"customAddOns"`
	SpecialPeriods []SpecialPeriod  `json:"specialPricing"`
	VATRate        float64          `json:"vatRate"`
}

func (c *Catalog) FindCustomAddOn(id string) (CustomAddOn, bool) {
	for _, a := range c.CustomAddOns {
		if a.ID == id {
			return a, true
		}
	}
	return CustomAddOn{}, false
}

func (c *Catalog) AddCustomAddOn(a CustomAddOn) error {
	if strings.TrimSpace(a.ID) == "" || strings.TrimSpace(a.Name) == "" {
		return errs.Mark(errs.New("custom add-on id and name are required"), ErrInvalidSettings)
	}
	if a.Price.IsNegative() {
		return errs.Mark(errs.New("custom add-on price cannot be negative"), ErrInvalidSettings)
	}
	if _, exists := c.FindCustomAddOn(a.ID); exists {
		return ErrDuplicateCatalogItem
	}
	c.CustomAddOns = append(c.CustomAddOns, a)
	return nil
}

func (c *Catalog) RemoveCustomAddOn(id string) error {
	i := slices.IndexFunc(c.CustomAddOns, func(a CustomAddOn) bool { return a.ID == id })
	if i < 0 {
		return ErrCatalogItemNotFound
	}
	c.CustomAddOns = slices.Delete(c.CustomAddOns, i, i+1)
	return nil
}

func (c *Catalog) AddSpecialPeriod(p SpecialPeriod) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if slices.ContainsFunc(c.SpecialPeriods, func(e SpecialPeriod) bool { return e.ID == p.ID }) {
		return ErrDuplicateCatalogItem
	}
	c.SpecialPeriods = append(c.SpecialPeriods, p)
	return nil
}

// UpdateSpecialPeriod replaces the period in place so that its position, and
// therefore its precedence, is preserved.
func (c *Catalog) UpdateSpecialPeriod(p SpecialPeriod) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i := slices.IndexFunc(c.SpecialPeriods, func(e SpecialPeriod) bool { return e.ID == p.ID })
	if i < 0 {
		return ErrCatalogItemNotFound
	}
	c.SpecialPeriods[i] = p
	return nil
}

func (c *Catalog) RemoveSpecialPeriod(id string) error {
	i := slices.IndexFunc(c.SpecialPeriods, func(e SpecialPeriod) bool { return e.ID == id })
	if i < 0 {
		return ErrCatalogItemNotFound
	}
	c.SpecialPeriods = slices.Delete(c.SpecialPeriods, i, i+1)
	return nil
}

type CampingSettings struct {
	Catalog
	Locations               map[string]LocationRate `json:"locations"`
	MaxUnitsPerDay          int                     `json:"maxTentsPerDay"`
	MaxUnitsPerRequest      int                     `json:"maxTentsPerBooking"`
	MaxBookingsPerDay       int                     `json:"maxBookingsPerDay"`
	LeadTimeDays            int                     `json:"leadTimeDays"`
	WadiSingleUnitSurcharge Money                   `json:"wadiSingleTentSurcharge"`
}

type BarbecueSettings struct {
	Catalog
	GroupTierRates map[int]Money `json:"groupTierRates"`
}

// Settings is the pricing document of one product.
type Settings interface {
	Product() Product
	CatalogRef() *Catalog
}

func (s *CampingSettings) Product() Product { return ProductCamping }

func (s *CampingSettings) CatalogRef() *Catalog { return &s.Catalog }

func (s *BarbecueSettings) Product() Product { return ProductBarbecue }

func (s *BarbecueSettings) CatalogRef() *Catalog { return &s.Catalog }
