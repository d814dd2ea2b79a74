package colony

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"raid/utils"

	"github.com/google/uuid"
)

const MaxWear = 100.0

// StateHash fingerprints a State.
type StateHash uint64

// State is everything about the colony that persists between missions.
type State struct {
	Resources  int     // resource pool, never negative
	Wear       float64 // structural wear of the target, 0..100 (breached at 100)
	Threat     int     // defender strength, at least 1
	Eliminated int     // cumulative units lost over all missions
	Wave       int     // index of the next mission, starting at 1
	Groups     []OriginGroup
}

// NewState returns the colony a new game starts with.
func NewState() State {
	return State{
		Resources: 100,
		Wear:      0,
		Threat:    2,
		Wave:      1,
		Groups: []OriginGroup{
			NewOriginGroup("A", 1, 6, 6),
			NewOriginGroup("B", 1, 8, 8),
		},
	}
}

// Copy returns a State that shares no memory with s.
func (s State) Copy() State {
	groups := make([]OriginGroup, len(s.Groups))
	copy(groups, s.Groups)
	s.Groups = groups
	return s
}

// Group looks up an origin group by id.
func (s State) Group(id uuid.UUID) (OriginGroup, bool) {
	i := s.index(id)
	if i < 0 {
		return OriginGroup{}, false
	}
	return s.Groups[i], true
}

func (s State) index(id uuid.UUID) int {
	return utils.FindIndex(s.Groups, func(g OriginGroup) bool { return g.ID == id })
}

// TotalUnits counts units available across all groups.
func (s State) TotalUnits() int {
	total := 0
	for _, g := range s.Groups {
		total += g.Units
	}
	return total
}

// Breached reports whether the target has been worn down completely.
func (s State) Breached() bool {
	return s.Wear >= MaxWear
}

// Validate checks the invariants a loaded or hand-built state must satisfy.
func (s State) Validate() error {
	if s.Resources < 0 {
		return fmt.Errorf("resources %d: %w", s.Resources, ErrInvalidState)
	}
	if s.Wear < 0 || s.Wear > MaxWear || math.IsNaN(s.Wear) {
		return fmt.Errorf("wear %v outside [0,%v]: %w", s.Wear, MaxWear, ErrInvalidState)
	}
	if s.Threat < 1 {
		return fmt.Errorf("threat level %d below 1: %w", s.Threat, ErrInvalidState)
	}
	if s.Eliminated < 0 {
		return fmt.Errorf("eliminated %d: %w", s.Eliminated, ErrInvalidState)
	}
	if s.Wave < 1 {
		return fmt.Errorf("wave %d below 1: %w", s.Wave, ErrInvalidState)
	}
	seen := make(map[uuid.UUID]struct{}, len(s.Groups))
	for _, g := range s.Groups {
		if _, dup := seen[g.ID]; dup {
			return fmt.Errorf("duplicate origin group %s: %w", g.ID, ErrInvalidState)
		}
		seen[g.ID] = struct{}{}
		if g.Level < MinLevel || g.Level > MaxLevel {
			return fmt.Errorf("origin group %q level %d: %w", g.Name, g.Level, ErrInvalidState)
		}
		if g.Capacity < 0 || g.Units < 0 || g.Units > g.Capacity {
			return fmt.Errorf("origin group %q has %d/%d units: %w", g.Name, g.Units, g.Capacity, ErrInvalidState)
		}
	}
	return nil
}

func (s State) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.Resources))
	binary.Write(hasher, binary.LittleEndian, math.Float64bits(s.Wear))
	binary.Write(hasher, binary.LittleEndian, int64(s.Threat))
	binary.Write(hasher, binary.LittleEndian, int64(s.Eliminated))
	binary.Write(hasher, binary.LittleEndian, int64(s.Wave))

	for _, g := range s.Groups {
		hasher.Write(g.ID[:])
		hasher.Write([]byte(g.Name))
		binary.Write(hasher, binary.LittleEndian, int64(g.Level))
		binary.Write(hasher, binary.LittleEndian, int64(g.Capacity))
		binary.Write(hasher, binary.LittleEndian, int64(g.Units))
	}

	return StateHash(hasher.Sum64())
}
