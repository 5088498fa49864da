package pricing

import (
	"encoding/json"
	"reflect"
	"strings"

	"glamping-booking/internal/domain/calendar"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Normalize decodes a raw settings document. Missing or malformed fields fall
// back to the product defaults; it never fails.
func Normalize(p Product, doc map[string]any) Settings {
	if p == ProductBarbecue {
		return NormalizeBarbecue(doc)
	}
	return NormalizeCamping(doc)
}

// ToDocument renders settings in the stored document shape that Normalize
// reads back.
func ToDocument(s Settings) (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func NormalizeCamping(doc map[string]any) *CampingSettings {
	s := DefaultCampingSettings()
	if doc == nil {
		return s
	}
	normalizeCatalog(&s.Catalog, doc)

	if raw, ok := doc["locations"].(map[string]any); ok {
		for name, v := range raw {
			rate, known := s.Locations[name]
			fields, ok := v.(map[string]any)
			if !known || !ok {
				continue
			}
			rate.WeekdayRate = moneyOr(fields["weekdayRate"], rate.WeekdayRate)
			rate.WeekendRate = moneyOr(fields["weekendRate"], rate.WeekendRate)
			rate.Surcharge = moneyOr(fields["surcharge"], rate.Surcharge)
			s.Locations[name] = rate
		}
	}

	s.MaxUnitsPerDay = positiveIntOr(doc["maxTentsPerDay"], s.MaxUnitsPerDay)
	s.MaxUnitsPerRequest = positiveIntOr(doc["maxTentsPerBooking"], s.MaxUnitsPerRequest)
	s.MaxBookingsPerDay = positiveIntOr(doc["maxBookingsPerDay"], s.MaxBookingsPerDay)
	s.LeadTimeDays = nonNegativeIntOr(doc["leadTimeDays"], s.LeadTimeDays)
	s.WadiSingleUnitSurcharge = moneyOr(doc["wadiSingleTentSurcharge"], s.WadiSingleUnitSurcharge)
	return s
}

func NormalizeBarbecue(doc map[string]any) *BarbecueSettings {
	s := DefaultBarbecueSettings()
	if doc == nil {
		return s
	}
	normalizeCatalog(&s.Catalog, doc)

	if raw, ok := doc["groupTierRates"].(map[string]any); ok {
		for key, v := range raw {
			size, err := cast.ToIntE(strings.TrimSpace(key))
			if err != nil || !IsGroupTier(size) {
				continue
			}
			s.GroupTierRates[size] = moneyOr(v, s.GroupTierRates[size])
		}
	}
	return s
}

func normalizeCatalog(c *Catalog, doc map[string]any) {
	if raw, ok := doc["addOnPrices"].(map[string]any); ok {
		for name, v := range raw {
			if !IsFixedAddOn(name) {
				continue
			}
			c.AddOnPrices[name] = moneyOr(v, c.AddOnPrices[name])
		}
	}

	if v, ok := doc["vatRate"]; ok {
		if rate, err := cast.ToFloat64E(v); err == nil && rate >= 0 && rate < 1 {
			c.VATRate = rate
		}
	}

	if items, ok := doc["customAddOns"].([]any); ok {
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			var a CustomAddOn
			if err := weakDecode(item, &a); err != nil {
				continue
			}
			a.ID = strings.TrimSpace(a.ID)
			if a.ID == "" || strings.TrimSpace(a.Name) == "" || a.Price.IsNegative() || seen[a.ID] {
				continue
			}
			seen[a.ID] = true
			c.CustomAddOns = append(c.CustomAddOns, a)
		}
	}

	if items, ok := doc["specialPricing"].([]any); ok {
		for _, item := range items {
			p := SpecialPeriod{Multiplier: 1, IsActive: true}
			if err := weakDecode(item, &p); err != nil {
				continue
			}
			if p.Multiplier <= 0 {
				p.Multiplier = 1
			}
			if p.Validate() != nil {
				continue
			}
			c.SpecialPeriods = append(c.SpecialPeriods, p)
		}
	}
}

var (
	moneyType = reflect.TypeOf(Money{})
	dateType  = reflect.TypeOf(calendar.Date{})
)

func weakDecode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(moneyHook, dateHook),
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func moneyHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != moneyType {
		return data, nil
	}
	v, err := cast.ToFloat64E(data)
	if err != nil {
		return nil, err
	}
	return MoneyFromMajor(v), nil
}

func dateHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dateType {
		return data, nil
	}
	s, err := cast.ToStringE(data)
	if err != nil {
		return nil, err
	}
	return calendar.ParseDate(s)
}

func moneyOr(v any, fallback Money) Money {
	if v == nil {
		return fallback
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f < 0 {
		return fallback
	}
	return MoneyFromMajor(f)
}

func positiveIntOr(v any, fallback int) int {
	if v == nil {
		return fallback
	}
	n, err := cast.ToIntE(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func nonNegativeIntOr(v any, fallback int) int {
	if v == nil {
		return fallback
	}
	n, err := cast.ToIntE(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
