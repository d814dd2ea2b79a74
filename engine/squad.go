package engine

import (
	"raid/colony"
	"raid/trial"
	"raid/utils"

	"github.com/google/uuid"
)

// SquadOutcome is the fate of one squad. Sent == FieldLost + InfiltrationLost + Returned.
type SquadOutcome struct {
	OriginID         uuid.UUID
	Name             string
	Sent             int
	FieldLost        int // eliminated before reaching the target
	InfiltrationLost int // eliminated inside the target
	Returned         int
	Loot             int
	Wear             float64
}

// Reached is the number of units that made it to the target.
func (o SquadOutcome) Reached() int {
	return o.Sent - o.FieldLost
}

// FieldRisk returns the per-unit trap and hunter hazards for a squad of count
// units from g, after the plan's risk multiplier and crowd pressure.
func FieldRisk(state colony.State, g colony.OriginGroup, count int, riskMultiplier float64) (trapP, hunterP float64) {
	threat := float64(state.Threat)
	eliminated := float64(state.Eliminated)
	reduction := g.RiskReduction()

	trapP = utils.Clamp(0.05+0.02*threat+0.0007*eliminated-reduction, 0.02, 0.8) * riskMultiplier
	hunterP = utils.Clamp(0.05+0.03*threat+0.00084*eliminated-1.1*reduction, 0.02, 0.9) * riskMultiplier

	// large squads draw more attention
	crowd := utils.Clamp(0.004*float64(count), 0, 0.15)
	trapP = utils.Clamp(trapP+0.4*crowd, 0, 0.95)
	hunterP = utils.Clamp(hunterP+0.6*crowd, 0, 0.95)
	return trapP, hunterP
}

// FieldLossChance combines two independent hazards.
func FieldLossChance(trapP, hunterP float64) float64 {
	return 1 - (1-trapP)*(1-hunterP)
}

// SurvivalChance is the probability that a unit which reached the target
// makes it back out.
func SurvivalChance(state colony.State, g colony.OriginGroup, bonus float64) float64 {
	p := 0.75 -
		0.05*float64(state.Threat) -
		0.0005*float64(state.Eliminated) -
		0.02*float64(state.Wave/5) +
		0.03*float64(g.Level) +
		bonus
	return utils.Clamp(p, 0.05, 0.95)
}

// ResolveSquad runs the field and infiltration trials for one squad. The
// colony-wide history is read from state as it stood before the mission.
func ResolveSquad(state colony.State, sq Squad, plan PlanResult, src trial.Source) SquadOutcome {
	g := sq.Group

	trapP, hunterP := FieldRisk(state, g, sq.Count, plan.RiskMultiplier)
	fieldLost := trial.Binomial(src, sq.Count, FieldLossChance(trapP, hunterP))
	reached := sq.Count - fieldLost

	survivors := trial.Binomial(src, reached, SurvivalChance(state, g, plan.InfiltrationBonus))

	return SquadOutcome{
		OriginID:         g.ID,
		Name:             g.Name,
		Sent:             sq.Count,
		FieldLost:        fieldLost,
		InfiltrationLost: reached - survivors,
		Returned:         survivors,
		Loot:             int(float64(survivors) * g.LootCoefficient()),
		Wear:             0.15*float64(reached) + 0.2*float64(survivors),
	}
}
