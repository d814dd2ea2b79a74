package engine

import (
	"raid/colony"
	"raid/trial"

	"github.com/rs/zerolog/log"
)

// Resolve runs one mission against state and returns the committed state
// with the mission outcome. state itself is never modified. When nothing can
// be deployed, or the plan is unknown, Resolve returns state unchanged and a
// nil outcome.
func Resolve(state colony.State, order colony.Order, plan colony.Plan, src trial.Source) (colony.State, *Outcome) {
	squads := Assemble(state, order)
	if len(squads) == 0 {
		log.Debug().Msgf("wave %d: all %d order entries dropped", state.Wave, len(order))
		return state, nil
	}
	if dropped := len(order) - len(squads); dropped > 0 {
		log.Debug().Msgf("wave %d: dropped %d invalid order entries", state.Wave, dropped)
	}

	planResult, ok := ResolvePlan(plan, state.Threat, squads, src)
	if !ok {
		log.Warn().Msgf("wave %d: unknown plan %s, mission aborted", state.Wave, plan)
		return state, nil
	}

	next := state.Copy()
	reserve(&next, squads)

	outcomes := make([]SquadOutcome, len(squads))
	for i, sq := range squads {
		outcomes[i] = ResolveSquad(state, sq, planResult, src)
	}

	out := Aggregate(planResult, state.Wave, outcomes)
	commit(&next, squads, out)

	log.Debug().
		Int("wave", out.Wave).
		Str("plan", plan.String()).
		Bool("plan_succeeded", out.PlanSucceeded).
		Int("sent", out.Sent).
		Int("lost", out.Lost()).
		Int("returned", out.Returned).
		Int("loot", out.Loot).
		Float64("wear", next.Wear).
		Msg("mission resolved")

	return next, out
}
