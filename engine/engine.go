package engine

import (
	"raid/colony"
	"raid/trial"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Engine drives missions against a colony it owns: the pending order and
// plan are edited between missions and Launch commits the next one.
type Engine struct {
	State  colony.State
	Order  colony.Order
	Plan   colony.Plan
	source trial.Source
}

func New(state colony.State, source trial.Source) *Engine {
	if source == nil {
		panic("engine requires a trial source")
	}
	return &Engine{
		State:  state,
		Order:  colony.Order{},
		Plan:   colony.Reconnaissance,
		source: source,
	}
}

// Select sets the squad size requested from a group, capped to the units it
// has available. A non-positive count removes the group from the order.
// It returns the count actually selected.
func (e *Engine) Select(id uuid.UUID, count int) int {
	g, ok := e.State.Group(id)
	if !ok || count <= 0 {
		delete(e.Order, id)
		return 0
	}
	count = min(count, g.Units)
	if count == 0 {
		delete(e.Order, id)
		return 0
	}
	e.Order[id] = count
	return count
}

// SelectAll requests every available unit of every group.
func (e *Engine) SelectAll() int {
	total := 0
	for _, g := range e.State.Groups {
		total += e.Select(g.ID, g.Units)
	}
	return total
}

// ResetSelection clears the pending order.
func (e *Engine) ResetSelection() {
	e.Order.Clear()
}

// Launch resolves the pending order with the selected plan. On success the
// committed state replaces the engine's state and the order is cleared. A nil
// outcome means nothing was deployed and the state is untouched.
func (e *Engine) Launch() *Outcome {
	next, out := Resolve(e.State, e.Order, e.Plan, e.source)
	if out == nil {
		return nil
	}
	e.State = next
	e.ResetSelection()
	if e.State.Breached() {
		log.Info().Msgf("target breached at wave %d", out.Wave)
	}
	return out
}
