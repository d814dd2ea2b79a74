package advisor

import "raid/colony"

// Weights used by Score for loot and losses relative to wear.
const (
	LootWeight   = 0.1
	LossesWeight = 0.1
)

// Estimate holds the mean outcome of a plan over its simulated missions.
type Estimate struct {
	Plan         colony.Plan
	Episodes     int // simulated missions that deployed
	SuccessRate  float64
	MeanLoot     float64
	MeanLosses   float64
	MeanReturned float64
	MeanWear     float64
}

// Score favours progress on the target, then loot, and penalises losses.
func (e Estimate) Score() float64 {
	return e.MeanWear + LootWeight*e.MeanLoot - LossesWeight*e.MeanLosses
}

func summarise(plan colony.Plan, samples []sample) Estimate {
	e := Estimate{Plan: plan}
	var successes, loot, lost, returned int
	var wear float64
	for _, s := range samples {
		if !s.deployed {
			continue
		}
		e.Episodes++
		if s.succeeded {
			successes++
		}
		loot += s.loot
		lost += s.lost
		returned += s.returned
		wear += s.wear
	}
	if e.Episodes == 0 {
		return e
	}
	n := float64(e.Episodes)
	e.SuccessRate = float64(successes) / n
	e.MeanLoot = float64(loot) / n
	e.MeanLosses = float64(lost) / n
	e.MeanReturned = float64(returned) / n
	e.MeanWear = wear / n
	return e
}
