package pricing

import "glamping-booking/internal/domain/calendar"

// ResolveSpecialPeriod returns the first active period covering d, in the
// order the periods are stored. Overlaps are not merged.
func ResolveSpecialPeriod(periods []SpecialPeriod, d calendar.Date) (SpecialPeriod, bool) {
	for _, p := range periods {
		if p.Covers(d) {
			return p, true
		}
	}
	return SpecialPeriod{}, false
}
