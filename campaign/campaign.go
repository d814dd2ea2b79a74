// Package campaign plays whole campaigns of missions headlessly, for balance
// runs and regression checks of the raid engine.
package campaign

import (
	"time"

	"raid/advisor"
	"raid/colony"
	"raid/engine"
	"raid/metrics"
	"raid/trial"

	"github.com/rs/zerolog/log"
)

const DefaultMaxWaves = 200

type Option func(r *Runner)

func WithMaxWaves(waves int) Option {
	return func(r *Runner) {
		if waves > 0 {
			r.maxWaves = waves
		}
	}
}

// WithPlan fixes the plan used for every mission.
func WithPlan(plan colony.Plan) Option {
	return func(r *Runner) {
		r.plan = plan
	}
}

// WithAdvisor lets an advisor choose the plan before each mission. The fixed
// plan is used when the advisor has no recommendation.
func WithAdvisor(a *advisor.Advisor) Option {
	return func(r *Runner) {
		r.advisor = a
	}
}

type Runner struct {
	engine   *engine.Engine
	policy   Policy
	advisor  *advisor.Advisor
	plan     colony.Plan
	maxWaves int
	seed     uint64
}

func New(state colony.State, policy Policy, seed uint64, options ...Option) *Runner {
	if policy == nil {
		panic("campaign requires a policy")
	}
	r := &Runner{
		engine:   engine.New(state, trial.NewSource(seed)),
		policy:   policy,
		plan:     colony.Reconnaissance,
		maxWaves: DefaultMaxWaves,
		seed:     seed,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// State is the colony as it currently stands.
func (r *Runner) State() colony.State {
	return r.engine.State
}

// Run plays missions until the target is breached, the wave limit is reached
// or the policy has nothing left to send.
func (r *Runner) Run() (metrics.CampaignMetric, []metrics.MissionMetric) {
	result := metrics.CampaignMetric{Seed: r.seed, StartTime: time.Now()}
	var missions []metrics.MissionMetric

	log.Info().Msgf("campaign %d starting with %d units", r.seed, r.engine.State.TotalUnits())

	for !r.engine.State.Breached() && len(missions) < r.maxWaves {
		r.policy.Invest(&r.engine.State)

		r.engine.ResetSelection()
		for id, count := range r.policy.Orders(r.engine.State) {
			r.engine.Select(id, count)
		}
		if len(r.engine.Order) == 0 {
			result.Stalled = true
			break
		}

		r.engine.Plan = r.choosePlan()
		out := r.engine.Launch()
		if out == nil {
			result.Stalled = true
			break
		}

		mission := missionMetric(out, r.engine.State)
		missions = append(missions, mission)
		result.TotalLoot += out.Loot
	}

	state := r.engine.State
	result.Missions = len(missions)
	result.Breached = state.Breached()
	result.FinalWear = state.Wear
	result.Eliminated = state.Eliminated
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	log.Info().Msgf("campaign %d finished after %d missions: breached=%t stalled=%t wear=%.1f",
		r.seed, result.Missions, result.Breached, result.Stalled, result.FinalWear)

	return result, missions
}

func (r *Runner) choosePlan() colony.Plan {
	if r.advisor == nil {
		return r.plan
	}
	plan, _, ok := r.advisor.Recommend(r.engine.State, r.engine.Order)
	if !ok {
		return r.plan
	}
	return plan
}

func missionMetric(out *engine.Outcome, state colony.State) metrics.MissionMetric {
	return metrics.MissionMetric{
		Wave:             out.Wave,
		Plan:             out.Plan.String(),
		PlanSucceeded:    out.PlanSucceeded,
		Sent:             out.Sent,
		FieldLost:        out.FieldLost,
		InfiltrationLost: out.InfiltrationLost,
		Returned:         out.Returned,
		Loot:             out.Loot,
		WearDelta:        out.Wear,
		Resources:        state.Resources,
		Wear:             state.Wear,
		Eliminated:       state.Eliminated,
	}
}
