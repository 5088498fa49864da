package availability

import "slices"

// Arrival slots.
var CampingSlots = []string{"14:00", "15:00", "16:00", "17:00"}

const BarbecueSlot = "16:00"

func IsCampingSlot(slot string) bool {
	return slices.Contains(CampingSlots, slot)
}

func freeSlots(all []string, taken []string) []string {
	free := make([]string, 0, len(all))
	for _, s := range all {
		if !slices.Contains(taken, s) {
			free = append(free, s)
		}
	}
	return free
}
