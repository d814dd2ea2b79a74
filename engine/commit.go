package engine

import (
	"raid/colony"
	"raid/utils"

	"github.com/google/uuid"
)

// Outcome is the aggregate result of one mission, with a per-squad breakdown.
type Outcome struct {
	Plan          colony.Plan
	PlanSucceeded bool
	PlanNote      string
	PlanWearBonus float64
	Wave          int // wave index the mission was resolved at

	Sent             int
	FieldLost        int
	InfiltrationLost int
	Returned         int
	Loot             int
	Wear             float64 // squad contributions plus the plan's wear bonus

	Squads []SquadOutcome // in colony group order
}

// Lost is the number of units eliminated during the mission.
func (o *Outcome) Lost() int {
	return o.FieldLost + o.InfiltrationLost
}

// ByOrigin indexes the squad breakdown by origin group id.
func (o *Outcome) ByOrigin() map[uuid.UUID]SquadOutcome {
	byOrigin := make(map[uuid.UUID]SquadOutcome, len(o.Squads))
	for _, sq := range o.Squads {
		byOrigin[sq.OriginID] = sq
	}
	return byOrigin
}

// Aggregate sums squad outcomes and adds the plan's wear bonus once.
func Aggregate(plan PlanResult, wave int, squads []SquadOutcome) *Outcome {
	out := &Outcome{
		Plan:          plan.Plan,
		PlanSucceeded: plan.Succeeded,
		PlanNote:      plan.Note,
		PlanWearBonus: plan.WearBonus,
		Wave:          wave,
		Squads:        squads,
	}
	for _, sq := range squads {
		out.Sent += sq.Sent
		out.FieldLost += sq.FieldLost
		out.InfiltrationLost += sq.InfiltrationLost
		out.Returned += sq.Returned
		out.Loot += sq.Loot
		out.Wear += sq.Wear
	}
	out.Wear += plan.WearBonus
	return out
}

// commit applies an outcome to next, the reserved working copy of the colony.
func commit(next *colony.State, squads []Squad, out *Outcome) {
	next.Resources += out.Loot
	next.Wear = utils.Clamp(next.Wear+out.Wear, 0, colony.MaxWear)
	next.Eliminated += out.Lost()
	for i, sq := range squads {
		next.Groups[sq.index].Units += out.Squads[i].Returned
	}
	next.Wave++
}
