package engine

import (
	"raid/colony"
)

// Squad is the part of one origin group sent on a mission.
type Squad struct {
	Group colony.OriginGroup
	Count int
	index int // position of Group in the state it was assembled from
}

// Assemble validates an order against the colony and returns one squad per
// accepted entry, in colony group order. Entries for unknown groups, with a
// non-positive count, or asking for more units than are available are dropped.
// Assemble does not reserve anything.
func Assemble(state colony.State, order colony.Order) []Squad {
	var squads []Squad
	for i, g := range state.Groups {
		count, ok := order[g.ID]
		if !ok || count <= 0 || count > g.Units {
			continue
		}
		squads = append(squads, Squad{Group: g, Count: count, index: i})
	}
	return squads
}

// reserve deducts every squad from its group in next.
func reserve(next *colony.State, squads []Squad) {
	for _, sq := range squads {
		next.Groups[sq.index].Units -= sq.Count
	}
}

func averageLevel(squads []Squad) float64 {
	if len(squads) == 0 {
		return 0
	}
	total := 0
	for _, sq := range squads {
		total += sq.Group.Level
	}
	return float64(total) / float64(len(squads))
}
