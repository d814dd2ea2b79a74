package campaign

import (
	"errors"

	"raid/colony"

	"github.com/rs/zerolog/log"
)

// Policy plays the colony between missions.
type Policy interface {
	// Invest spends resources on economy actions before a mission.
	Invest(state *colony.State)
	// Orders picks the squads for the next mission.
	Orders(state colony.State) colony.Order
}

// GreedyPolicy sends every available unit, refills every group, then
// upgrades the lowest-level group it can afford.
type GreedyPolicy struct{}

func (GreedyPolicy) Invest(state *colony.State) {
	for _, g := range state.Groups {
		if g.FreeCapacity() == 0 {
			continue
		}
		if _, err := state.Recruit(g.ID, g.FreeCapacity()); err != nil {
			log.Debug().Err(err).Msg("recruitment skipped")
		}
	}

	target := -1
	for i, g := range state.Groups {
		if !g.CanUpgrade() || g.UpgradeCost() > state.Resources {
			continue
		}
		if target < 0 || g.Level < state.Groups[target].Level {
			target = i
		}
	}
	if target < 0 {
		return
	}
	err := state.Upgrade(state.Groups[target].ID)
	if err != nil && !errors.Is(err, colony.ErrInsufficientResources) {
		log.Warn().Err(err).Msg("upgrade failed")
	}
}

func (GreedyPolicy) Orders(state colony.State) colony.Order {
	order := colony.Order{}
	for _, g := range state.Groups {
		if g.Units > 0 {
			order[g.ID] = g.Units
		}
	}
	return order
}
