package engine

import (
	"raid/colony"
	"raid/trial"
	"raid/utils"
)

// PlanResult holds the mission-wide modifiers derived from the plan check.
type PlanResult struct {
	Plan              colony.Plan
	Chance            float64
	Succeeded         bool
	RiskMultiplier    float64 // scales both field hazards
	InfiltrationBonus float64 // added to infiltration survival
	WearBonus         float64 // added once to the mission's wear
	Note              string
}

// PlanChance is the success probability of a plan against the given threat
// level, for squads of the given average level.
func PlanChance(plan colony.Plan, threat int, avgLevel float64) float64 {
	switch plan {
	case colony.Reconnaissance:
		return utils.Clamp(0.6-0.05*float64(threat), 0.1, 0.7)
	case colony.Breach:
		return utils.Clamp(0.3+0.08*avgLevel, 0.15, 0.85)
	default:
		return 0
	}
}

// ResolvePlan performs the single plan check of a mission. It returns false
// for a plan that is not one of the known variants, consuming no randomness.
func ResolvePlan(plan colony.Plan, threat int, squads []Squad, src trial.Source) (PlanResult, bool) {
	if !plan.Valid() {
		return PlanResult{}, false
	}
	chance := PlanChance(plan, threat, averageLevel(squads))
	ok := trial.Bernoulli(src, chance)
	return planEffects(plan, chance, ok), true
}

func planEffects(plan colony.Plan, chance float64, ok bool) PlanResult {
	r := PlanResult{Plan: plan, Chance: chance, Succeeded: ok, RiskMultiplier: 1.0}
	switch plan {
	case colony.Reconnaissance:
		if ok {
			r.RiskMultiplier = 0.7
			r.InfiltrationBonus = 0.08
			r.Note = "weak spot found"
		} else {
			r.Note = "no weak spot found"
		}
	case colony.Breach:
		if ok {
			r.RiskMultiplier = 0.5
			r.InfiltrationBonus = 0.12
			r.WearBonus = 2.0
			r.Note = "passage opened"
		} else {
			r.RiskMultiplier = 1.1
			r.InfiltrationBonus = -0.05
			r.Note = "passage collapsed"
		}
	}
	return r
}
