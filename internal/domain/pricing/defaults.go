package pricing

const (
	DefaultVATRate                 = 0.05
	DefaultMaxUnitsPerDay          = 10
	DefaultMaxUnitsPerRequest      = 5
	DefaultMaxBookingsPerDay       = 3
	DefaultLeadTimeDays            = 2
	DefaultWadiSingleUnitSurcharge = 500
)

func defaultAddOnPrices() map[string]Money {
	return map[string]Money{
		AddOnCharcoal:       MoneyFromMajor(60),
		AddOnFirewood:       MoneyFromMajor(45),
		AddOnPortableToilet: MoneyFromMajor(250),
	}
}

func DefaultCampingSettings() *CampingSettings {
	return &CampingSettings{
		Catalog: Catalog{
			AddOnPrices:    defaultAddOnPrices(),
			CustomAddOns:   []CustomAddOn{},
			SpecialPeriods: []SpecialPeriod{},
			VATRate:        DefaultVATRate,
		},
		Locations: map[string]LocationRate{
			LocationDesert: {
				WeekdayRate: MoneyFromMajor(1297),
				WeekendRate: MoneyFromMajor(1497),
			},
			LocationMountain: {
				WeekdayRate: MoneyFromMajor(1497),
				WeekendRate: MoneyFromMajor(1697),
				Surcharge:   MoneyFromMajor(200),
			},
			LocationWadi: {
				WeekdayRate: MoneyFromMajor(1497),
				WeekendRate: MoneyFromMajor(1697),
				Surcharge:   MoneyFromMajor(250),
			},
		},
		MaxUnitsPerDay:          DefaultMaxUnitsPerDay,
		MaxUnitsPerRequest:      DefaultMaxUnitsPerRequest,
		MaxBookingsPerDay:       DefaultMaxBookingsPerDay,
		LeadTimeDays:            DefaultLeadTimeDays,
		WadiSingleUnitSurcharge: MoneyFromMajor(DefaultWadiSingleUnitSurcharge),
	}
}

func DefaultBarbecueSettings() *BarbecueSettings {
	return &BarbecueSettings{
		Catalog: Catalog{
			AddOnPrices:    defaultAddOnPrices(),
			CustomAddOns:   []CustomAddOn{},
			SpecialPeriods: []SpecialPeriod{},
			VATRate:        DefaultVATRate,
		},
		GroupTierRates: map[int]Money{
			10: MoneyFromMajor(1497),
			15: MoneyFromMajor(1797),
			20: MoneyFromMajor(2097),
		},
	}
}

func DefaultSettings(p Product) Settings {
	if p == ProductBarbecue {
		return DefaultBarbecueSettings()
	}
	return DefaultCampingSettings()
}
