package colony

import "github.com/google/uuid"

// Order maps an origin group id to the requested squad size for one mission.
type Order map[uuid.UUID]int

// Total is the sum of all requested counts.
func (o Order) Total() int {
	total := 0
	for _, count := range o {
		total += count
	}
	return total
}

// Clear removes every entry.
func (o Order) Clear() {
	clear(o)
}
