package colony

import "github.com/google/uuid"

const (
	MinLevel = 1
	MaxLevel = 5
)

// OriginGroup is a burrow: a pool of deployable units.
type OriginGroup struct {
	ID       uuid.UUID
	Name     string
	Level    int // 1..5, affects survival and loot
	Capacity int
	Units    int // currently available, never above Capacity
}

// NewOriginGroup returns a group with a fresh id. Units are capped at capacity.
func NewOriginGroup(name string, level, capacity, units int) OriginGroup {
	return OriginGroup{
		ID:       uuid.New(),
		Name:     name,
		Level:    level,
		Capacity: capacity,
		Units:    min(units, capacity),
	}
}

// LootCoefficient is 1.0, 1.5, 2.0, 2.5, 3.0 for levels 1..5.
func (g OriginGroup) LootCoefficient() float64 {
	return 1.0 + 0.5*float64(g.Level-1)
}

// RiskReduction lowers field hazards a little per level.
func (g OriginGroup) RiskReduction() float64 {
	return 0.012 * float64(g.Level)
}

func (g OriginGroup) UpgradeCost() int {
	return 60 * g.Level
}

func (g OriginGroup) CanUpgrade() bool {
	return g.Level < MaxLevel
}

// FreeCapacity is the number of units the group can still recruit.
func (g OriginGroup) FreeCapacity() int {
	return max(0, g.Capacity-g.Units)
}
