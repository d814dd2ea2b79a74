// Package advisor estimates, by repeated simulation, how each mission plan is
// likely to play out for a given colony and order.
package advisor

import (
	"sync"
	"time"

	"raid/colony"
	"raid/engine"
	"raid/metrics"
	"raid/trial"

	"github.com/rs/zerolog/log"
)

type Option func(a *Advisor)

type Advisor struct {
	goroutines int
	episodes   int // per plan
	duration   time.Duration
	seed       uint64
	metrics    metrics.Collector
}

func WithEpisodes(episodes int) Option {
	return func(a *Advisor) {
		if episodes > 0 {
			a.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(a *Advisor) {
		if duration > 0 {
			a.duration = duration
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Advisor) {
		a.seed = seed
	}
}

func WithMetrics() Option {
	return func(a *Advisor) {
		a.metrics = metrics.NewCollector()
	}
}

func New(goroutines int, options ...Option) *Advisor {
	a := &Advisor{
		goroutines: max(1, goroutines),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	if a.episodes <= 0 && a.duration <= 0 {
		panic("Must specify advisor episodes or duration")
	}
	return a
}

// sample is the result of one simulated mission.
type sample struct {
	deployed  bool
	succeeded bool
	loot      int
	lost      int
	returned  int
	wear      float64
}

type task struct {
	plan  int // index into colony.Plans
	index int
}

// Estimate simulates the order under every plan. Episodes are resolved on
// copies of state, each with its own seeded source; state is never modified.
// With a fixed episode count the result is reproducible for a given seed.
func (a *Advisor) Estimate(state colony.State, order colony.Order) ([]Estimate, metrics.SearchMetric) {
	a.metrics.Start(a.goroutines)

	var samples [][]sample
	if a.episodes > 0 {
		samples = a.iterate(state, order)
	} else {
		samples = a.countdown(state, order)
	}
	metric := a.metrics.Complete()

	estimates := make([]Estimate, len(colony.Plans))
	for i, plan := range colony.Plans {
		estimates[i] = summarise(plan, samples[i])
	}
	return estimates, metric
}

// Recommend returns the plan with the best score. ok is false when the order
// would not deploy anything.
func (a *Advisor) Recommend(state colony.State, order colony.Order) (plan colony.Plan, estimates []Estimate, ok bool) {
	estimates, metric := a.Estimate(state, order)
	best := -1
	for i, e := range estimates {
		if e.Episodes == 0 {
			continue
		}
		if best < 0 || e.Score() > estimates[best].Score() {
			best = i
		}
	}
	if best < 0 {
		return colony.Reconnaissance, estimates, false
	}
	log.Debug().Msgf("wave %d: advisor picked %s over %d episodes in %s",
		state.Wave, estimates[best].Plan, metric.Episodes, metric.Duration)
	return estimates[best].Plan, estimates, true
}

func (a *Advisor) iterate(state colony.State, order colony.Order) [][]sample {
	samples := make([][]sample, len(colony.Plans))
	for i := range samples {
		samples[i] = make([]sample, a.episodes)
	}

	tasks := make(chan task, len(colony.Plans)*a.episodes)
	for p := range colony.Plans {
		for i := 0; i < a.episodes; i++ {
			tasks <- task{plan: p, index: i}
		}
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < a.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range tasks {
				samples[t.plan][t.index] = a.simulate(state, order, t)
			}
		}()
	}

	wg.Wait()
	return samples
}

func (a *Advisor) countdown(state colony.State, order colony.Order) [][]sample {
	done := make(chan any)
	perWorker := make([][][]sample, a.goroutines)

	var wg sync.WaitGroup
	for w := 0; w < a.goroutines; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			local := make([][]sample, len(colony.Plans))
			for n := 0; ; n++ {
				select {
				case <-done:
					perWorker[w] = local
					return
				default:
					p := n % len(colony.Plans)
					t := task{plan: p, index: n*a.goroutines + w}
					local[p] = append(local[p], a.simulate(state, order, t))
				}
			}
		}(w)
	}

	<-time.After(a.duration)
	close(done)
	wg.Wait()

	samples := make([][]sample, len(colony.Plans))
	for _, local := range perWorker {
		for p := range local {
			samples[p] = append(samples[p], local[p]...)
		}
	}
	return samples
}

func (a *Advisor) simulate(state colony.State, order colony.Order, t task) sample {
	src := trial.NewSource(a.seed + uint64(t.index)*uint64(len(colony.Plans)) + uint64(t.plan))
	_, out := engine.Resolve(state, order, colony.Plans[t.plan], src)
	a.metrics.AddEpisode()
	if out == nil {
		a.metrics.AddNoOp()
		return sample{}
	}
	return sample{
		deployed:  true,
		succeeded: out.PlanSucceeded,
		loot:      out.Loot,
		lost:      out.Lost(),
		returned:  out.Returned,
		wear:      out.Wear,
	}
}
