package pricing

import (
	"fmt"

	"glamping-booking/internal/domain/calendar"
)

type Line struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Amount Money  `json:"amount"`
}

type Quote struct {
	Product             Product       `json:"product"`
	Date                calendar.Date `json:"date"`
	Weekend             bool          `json:"weekend"`
	BaseCost            Money         `json:"baseCost"`
	SpecialAdjustment   Money         `json:"specialAdjustment"`
	LocationSurcharge   Money         `json:"locationSurcharge"`
	SingleUnitSurcharge Money         `json:"singleUnitSurcharge"`
	AddOnsCost          Money         `json:"addOnsCost"`
	CustomAddOnsCost    Money         `json:"customAddOnsCost"`
	Subtotal            Money         `json:"subtotal"`
	VATRate             float64       `json:"vatRate"`
	VAT                 Money         `json:"vat"`
	Total               Money         `json:"total"`
	SpecialPricingName  string        `json:"specialPricingName,omitempty"`
	Lines               []Line        `json:"lines"`
}

type CampingInput struct {
	Date           calendar.Date
	Location       string
	Units          int
	HasChildren    bool
	AddOns         []string
	CustomAddOnIDs []string
}

type BarbecueInput struct {
	Date           calendar.Date
	GroupSize      int
	AddOns         []string
	CustomAddOnIDs []string
}

const (
	LineBase                = "base"
	LineSpecial             = "special"
	LineLocationSurcharge   = "location_surcharge"
	LineSingleUnitSurcharge = "single_unit_surcharge"
	LineAddOn               = "addon"
	LineCustomAddOn         = "custom_addon"
	LineUnavailable         = "unavailable"
)

// QuoteCamping prices a camping request. It is pure and deterministic.
func QuoteCamping(s *CampingSettings, in CampingInput) Quote {
	q := Quote{Product: ProductCamping, Date: in.Date, Weekend: in.Date.IsWeekend(), VATRate: s.VATRate}
	rate := s.Locations[in.Location]

	if in.Units == 1 && in.Location == LocationWadi {
		// a lone Wadi tent is always charged the weekend rate plus a penalty
		q.BaseCost = rate.WeekendRate
		q.SingleUnitSurcharge = s.WadiSingleUnitSurcharge
		q.addLine(LineBase, fmt.Sprintf("%s single tent (weekend rate)", in.Location), q.BaseCost)
	} else {
		unit, kind := rate.WeekdayRate, "weekday"
		if q.Weekend {
			unit, kind = rate.WeekendRate, "weekend"
		}
		q.BaseCost = unit.Times(in.Units)
		q.addLine(LineBase, fmt.Sprintf("%s %s rate x %d", in.Location, kind, in.Units), q.BaseCost)
	}

	if p, ok := ResolveSpecialPeriod(s.SpecialPeriods, in.Date); ok {
		multiplier := p.Multiplier
		if multiplier <= 0 {
			multiplier = 1
		}
		adjusted := q.BaseCost.MulRate(multiplier)
		q.SpecialAdjustment = adjusted.Sub(q.BaseCost)
		q.SpecialPricingName = p.Name
		q.addLine(LineSpecial, fmt.Sprintf("%s (x%g)", p.Name, multiplier), q.SpecialAdjustment)
	}

	q.LocationSurcharge = rate.Surcharge
	if !q.LocationSurcharge.IsZero() {
		q.addLine(LineLocationSurcharge, in.Location+" location surcharge", q.LocationSurcharge)
	}
	if !q.SingleUnitSurcharge.IsZero() {
		q.addLine(LineSingleUnitSurcharge, "Wadi single tent surcharge", q.SingleUnitSurcharge)
	}

	q.AddOnsCost = q.priceAddOns(&s.Catalog, in.AddOns, in.HasChildren)
	q.CustomAddOnsCost = q.priceCustomAddOns(&s.Catalog, in.CustomAddOnIDs)

	q.finalize(SumMoney(
		q.BaseCost,
		q.SpecialAdjustment,
		q.LocationSurcharge,
		q.SingleUnitSurcharge,
		q.AddOnsCost,
		q.CustomAddOnsCost,
	))
	return q
}

// QuoteBarbecue prices a barbecue request: a flat tier rate and a flat
// special-period amount.
func QuoteBarbecue(s *BarbecueSettings, in BarbecueInput) Quote {
	q := Quote{Product: ProductBarbecue, Date: in.Date, Weekend: in.Date.IsWeekend(), VATRate: s.VATRate}

	q.BaseCost = s.GroupTierRates[in.GroupSize]
	q.addLine(LineBase, fmt.Sprintf("Barbecue for %d guests", in.GroupSize), q.BaseCost)

	if p, ok := ResolveSpecialPeriod(s.SpecialPeriods, in.Date); ok {
		q.SpecialAdjustment = p.Amount
		q.SpecialPricingName = p.Name
		q.addLine(LineSpecial, p.Name, q.SpecialAdjustment)
	}

	q.AddOnsCost = q.priceAddOns(&s.Catalog, in.AddOns, false)
	q.CustomAddOnsCost = q.priceCustomAddOns(&s.Catalog, in.CustomAddOnIDs)

	q.finalize(SumMoney(q.BaseCost, q.SpecialAdjustment, q.AddOnsCost, q.CustomAddOnsCost))
	return q
}

func (q *Quote) priceAddOns(c *Catalog, names []string, hasChildren bool) Money {
	var total Money
	for _, name := range dedupe(names) {
		price, ok := c.AddOnPrices[name]
		switch {
		case !ok:
			q.addLine(LineUnavailable, fmt.Sprintf("Unavailable add-on (%s)", name), Money{})
		case name == AddOnPortableToilet && hasChildren:
			q.addLine(LineAddOn, "Portable toilet (included with children)", Money{})
		default:
			total = total.Add(price)
			q.addLine(LineAddOn, addOnLabel(name), price)
		}
	}
	return total
}

func (q *Quote) priceCustomAddOns(c *Catalog, ids []string) Money {
	var total Money
	for _, id := range dedupe(ids) {
		a, ok := c.FindCustomAddOn(id)
		if !ok {
			q.addLine(LineUnavailable, fmt.Sprintf("Unavailable add-on (%s)", id), Money{})
			continue
		}
		total = total.Add(a.Price)
		q.addLine(LineCustomAddOn, a.Name, a.Price)
	}
	return total
}

func (q *Quote) finalize(subtotal Money) {
	q.Subtotal = subtotal
	q.VAT = subtotal.MulRate(q.VATRate)
	q.Total = q.Subtotal.Add(q.VAT)
}

func (q *Quote) addLine(code, label string, amount Money) {
	q.Lines = append(q.Lines, Line{Code: code, Label: label, Amount: amount})
}

func addOnLabel(name string) string {
	switch name {
	case AddOnCharcoal:
		return "Charcoal"
	case AddOnFirewood:
		return "Firewood"
	case AddOnPortableToilet:
		return "Portable toilet"
	default:
		return name
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
