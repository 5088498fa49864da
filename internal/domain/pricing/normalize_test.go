//go:build unit

package pricing_test

import (
	"encoding/json"
	"testing"

	"glamping-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestNormalizeCamping(t *testing.T) {
	t.Run("nil document yields defaults", func(t *testing.T) {
		assert.Equal(t, pricing.DefaultCampingSettings(), pricing.NormalizeCamping(nil))
	})

	t.Run("numeric strings are coerced and invalid values fall back", func(t *testing.T) {
		doc := decodeDoc(t, `{
			"locations": {
				"Desert": {"weekdayRate": "1300", "weekendRate": 1500.5},
				"Mountain": {"weekdayRate": "abc", "surcharge": -1},
				"Moon": {"weekdayRate": 1}
			},
			"addOnPrices": {"charcoal": "75", "hotTub": 10},
			"vatRate": "0.10",
			"maxTentsPerDay": "12",
			"maxBookingsPerDay": 0,
			"leadTimeDays": "x"
		}`)

		s := pricing.NormalizeCamping(doc)
		d := pricing.DefaultCampingSettings()

		assert.Equal(t, major(1300), s.Locations[pricing.LocationDesert].WeekdayRate)
		assert.Equal(t, major(1500.5), s.Locations[pricing.LocationDesert].WeekendRate)
		assert.Equal(t, d.Locations[pricing.LocationMountain], s.Locations[pricing.LocationMountain])
		assert.NotContains(t, s.Locations, "Moon")
		assert.Equal(t, major(75), s.AddOnPrices[pricing.AddOnCharcoal])
		assert.NotContains(t, s.AddOnPrices, "hotTub")
		assert.InDelta(t, 0.10, s.VATRate, 1e-9)
		assert.Equal(t, 12, s.MaxUnitsPerDay)
		assert.Equal(t, d.MaxBookingsPerDay, s.MaxBookingsPerDay)
		assert.Equal(t, d.LeadTimeDays, s.LeadTimeDays)
	})

	t.Run("catalog lists skip malformed entries", func(t *testing.T) {
		doc := decodeDoc(t, `{
			"customAddOns": [
				{"id": "kayak", "name": "Kayak", "price": "120"},
				{"id": "kayak", "name": "Duplicate", "price": 1},
				{"id": "", "name": "No id", "price": 1},
				{"id": "bad", "name": "Bad price", "price": "lots"},
				"not an object"
			],
			"specialPricing": [
				{"id": "eid", "name": "Eid", "startDate": "2025-03-30", "endDate": "2025-04-02", "multiplier": "1.25"},
				{"id": "rev", "name": "Reversed", "startDate": "2025-05-02", "endDate": "2025-05-01"},
				{"id": "off", "name": "Off", "startDate": "2025-06-01", "endDate": "2025-06-02", "isActive": "false", "multiplier": 0}
			]
		}`)

		s := pricing.NormalizeCamping(doc)

		require.Len(t, s.CustomAddOns, 1)
		assert.Equal(t, pricing.CustomAddOn{ID: "kayak", Name: "Kayak", Price: major(120)}, s.CustomAddOns[0])

		require.Len(t, s.SpecialPeriods, 2)
		assert.Equal(t, "eid", s.SpecialPeriods[0].ID)
		assert.InDelta(t, 1.25, s.SpecialPeriods[0].Multiplier, 1e-9)
		assert.True(t, s.SpecialPeriods[0].IsActive)
		assert.Equal(t, "2025-03-30", s.SpecialPeriods[0].StartDate.String())
		assert.Equal(t, "off", s.SpecialPeriods[1].ID)
		assert.False(t, s.SpecialPeriods[1].IsActive)
		assert.InDelta(t, 1.0, s.SpecialPeriods[1].Multiplier, 1e-9)
	})
}

func TestNormalizeBarbecue(t *testing.T) {
	doc := decodeDoc(t, `{
		"groupTierRates": {"10": "1500", "15": null, "25": 3000},
		"specialPricing": [
			{"id": "promo", "name": "Promo", "startDate": "2025-01-01", "endDate": "2025-01-31", "amount": -50}
		]
	}`)

	s := pricing.NormalizeBarbecue(doc)

	assert.Equal(t, major(1500), s.GroupTierRates[10])
	assert.Equal(t, major(1797), s.GroupTierRates[15])
	assert.NotContains(t, s.GroupTierRates, 25)
	require.Len(t, s.SpecialPeriods, 1)
	assert.Equal(t, major(-50), s.SpecialPeriods[0].Amount)
}

func TestSettings_RoundTripThroughDocument(t *testing.T) {
	original := pricing.DefaultBarbecueSettings()
	require.NoError(t, original.AddCustomAddOn(pricing.CustomAddOn{ID: "dj", Name: "DJ", Price: major(400)}))

	b, err := json.Marshal(original)
	require.NoError(t, err)

	restored := pricing.NormalizeBarbecue(decodeDoc(t, string(b)))
	assert.Equal(t, original, restored)
}

func TestCatalog_Mutations(t *testing.T) {
	c := pricing.DefaultCampingSettings().CatalogRef()

	require.NoError(t, c.AddCustomAddOn(pricing.CustomAddOn{ID: "x", Name: "X", Price: major(1)}))
	assert.ErrorIs(t, c.AddCustomAddOn(pricing.CustomAddOn{ID: "x", Name: "X2"}), pricing.ErrDuplicateCatalogItem)
	assert.ErrorIs(t, c.RemoveCustomAddOn("missing"), pricing.ErrCatalogItemNotFound)
	require.NoError(t, c.RemoveCustomAddOn("x"))
	assert.Empty(t, c.CustomAddOns)

	p := pricing.SpecialPeriod{ID: "p1", Name: "P1", StartDate: tuesday, EndDate: friday, Multiplier: 1.1, IsActive: true}
	require.NoError(t, c.AddSpecialPeriod(p))
	require.NoError(t, c.AddSpecialPeriod(pricing.SpecialPeriod{ID: "p2", Name: "P2", StartDate: tuesday, EndDate: tuesday, IsActive: true}))

	p.Name = "Renamed"
	require.NoError(t, c.UpdateSpecialPeriod(p))
	assert.Equal(t, "Renamed", c.SpecialPeriods[0].Name)

	bad := p
	bad.EndDate = tuesday.AddDays(-1)
	assert.Error(t, c.UpdateSpecialPeriod(bad))

	require.NoError(t, c.RemoveSpecialPeriod("p1"))
	assert.Len(t, c.SpecialPeriods, 1)
}
