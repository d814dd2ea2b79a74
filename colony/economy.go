package colony

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	RecruitCost      = 1 // per unit
	CreateGroupCost  = 120
	WeakenCost       = 100
	WeakenWear       = 5.0
	UpgradeCapacity  = 3
	NewGroupCapacity = 6
)

// Recruit adds up to amount units to a group, limited by free capacity and
// by the resource pool. It returns the number of units recruited.
func (s *State) Recruit(id uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("cannot recruit %d units: %w", amount, ErrInvalidAmount)
	}
	i := s.index(id)
	if i < 0 {
		return 0, fmt.Errorf("cannot recruit into %s: %w", id, ErrUnknownGroup)
	}
	g := &s.Groups[i]
	if g.FreeCapacity() == 0 {
		return 0, fmt.Errorf("cannot recruit into %q: %w", g.Name, ErrNoCapacity)
	}
	if s.Resources < RecruitCost {
		return 0, fmt.Errorf("cannot recruit into %q: %w", g.Name, ErrInsufficientResources)
	}
	added := min(amount, g.FreeCapacity(), s.Resources/RecruitCost)
	g.Units += added
	s.Resources -= added * RecruitCost
	return added, nil
}

// Upgrade raises a group's level by one and its capacity by three.
func (s *State) Upgrade(id uuid.UUID) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("cannot upgrade %s: %w", id, ErrUnknownGroup)
	}
	g := &s.Groups[i]
	if !g.CanUpgrade() {
		return fmt.Errorf("cannot upgrade %q: %w", g.Name, ErrMaxLevel)
	}
	cost := g.UpgradeCost()
	if s.Resources < cost {
		return fmt.Errorf("cannot upgrade %q for %d with %d: %w", g.Name, cost, s.Resources, ErrInsufficientResources)
	}
	s.Resources -= cost
	g.Level++
	g.Capacity += UpgradeCapacity
	return nil
}

// CreateOriginGroup founds a new, empty level-1 group.
func (s *State) CreateOriginGroup(name string) (OriginGroup, error) {
	if s.Resources < CreateGroupCost {
		return OriginGroup{}, fmt.Errorf("cannot create origin group for %d with %d: %w", CreateGroupCost, s.Resources, ErrInsufficientResources)
	}
	if name == "" {
		name = fmt.Sprintf("%d", len(s.Groups)+1)
	}
	s.Resources -= CreateGroupCost
	g := NewOriginGroup(name, MinLevel, NewGroupCapacity, 0)
	s.Groups = append(s.Groups, g)
	return g, nil
}

// WeakenDefences lowers the threat level by one (never below 1) and adds a
// fixed amount of wear.
func (s *State) WeakenDefences() error {
	if s.Resources < WeakenCost {
		return fmt.Errorf("cannot weaken defences for %d with %d: %w", WeakenCost, s.Resources, ErrInsufficientResources)
	}
	s.Resources -= WeakenCost
	s.Threat = max(1, s.Threat-1)
	s.Wear = min(MaxWear, s.Wear+WeakenWear)
	return nil
}
