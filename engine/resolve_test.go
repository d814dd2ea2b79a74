package engine

import (
	"testing"

	"raid/colony"
	"raid/trial"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// scenarioState is a single level-1 group A with 6 of 6 units at threat 2.
func scenarioState() colony.State {
	return colony.State{
		Resources: 100,
		Threat:    2,
		Wave:      1,
		Groups:    []colony.OriginGroup{colony.NewOriginGroup("A", 1, 6, 6)},
	}
}

func twoGroupState(levelB int) colony.State {
	s := scenarioState()
	s.Groups = append(s.Groups, colony.NewOriginGroup("B", levelB, 8, 8))
	return s
}

func requirePartition(t *testing.T, out *Outcome) {
	t.Helper()
	for _, sq := range out.Squads {
		require.Equal(t, sq.Sent, sq.FieldLost+sq.InfiltrationLost+sq.Returned,
			"Squad %s should partition exactly", sq.Name)
		require.GreaterOrEqual(t, sq.FieldLost, 0)
		require.GreaterOrEqual(t, sq.InfiltrationLost, 0)
		require.GreaterOrEqual(t, sq.Returned, 0)
		require.GreaterOrEqual(t, sq.Loot, 0)
		require.GreaterOrEqual(t, sq.Wear, 0.0)
	}
	require.Equal(t, out.Sent, out.FieldLost+out.InfiltrationLost+out.Returned,
		"Mission should partition exactly")
}

func TestResolveScenario(t *testing.T) {
	t.Run("every plan roll keeps the partition and returns survivors home", func(t *testing.T) {
		for seed := uint64(0); seed < 200; seed++ {
			state := scenarioState()
			id := state.Groups[0].ID

			next, out := Resolve(state, colony.Order{id: 6}, colony.Reconnaissance, trial.NewSource(seed))

			require.NotNil(t, out)
			require.Len(t, out.Squads, 1)
			require.Equal(t, 6, out.Sent, "Conservation: sent equals validated request")
			requirePartition(t, out)
			require.Equal(t, out.Returned, next.Groups[0].Units, "Only survivors return")
			require.Equal(t, 100+out.Loot, next.Resources)
			require.Equal(t, out.Lost(), next.Eliminated)
			require.Equal(t, 2, next.Wave)
			require.Equal(t, 1, out.Wave)
		}
	})

	t.Run("fixed samples give an exact outcome", func(t *testing.T) {
		state := scenarioState()
		id := state.Groups[0].ID
		src := trial.NewSequence(
			0.4,                           // plan roll: below 0.5, weak spot found
			0.01, 0.9, 0.9, 0.9, 0.9, 0.9, // field: one loss at p≈0.141
			0.5, 0.5, 0.5, 0.9, 0.9, // inside: three survive at p=0.76
		)

		next, out := Resolve(state, colony.Order{id: 6}, colony.Reconnaissance, src)

		require.Equal(t, 12, src.Drawn(), "One sample per plan roll and per unit trial")
		require.True(t, out.PlanSucceeded)
		require.Equal(t, "weak spot found", out.PlanNote)
		require.Equal(t, 1, out.FieldLost)
		require.Equal(t, 2, out.InfiltrationLost)
		require.Equal(t, 3, out.Returned)
		require.Equal(t, 3, out.Loot)
		require.InDelta(t, 1.35, out.Wear, 1e-9)

		require.Equal(t, 103, next.Resources)
		require.InDelta(t, 1.35, next.Wear, 1e-9)
		require.Equal(t, 3, next.Eliminated)
		require.Equal(t, 3, next.Groups[0].Units)
		require.Equal(t, 2, next.Wave)
	})

	t.Run("squad wiped out in the field draws no infiltration samples", func(t *testing.T) {
		state := scenarioState()
		id := state.Groups[0].ID
		src := trial.NewSequence(0.0)

		next, out := Resolve(state, colony.Order{id: 6}, colony.Reconnaissance, src)

		require.Equal(t, 7, src.Drawn(), "Plan roll plus six field trials")
		require.Equal(t, 6, out.FieldLost)
		require.Equal(t, 0, out.Returned)
		require.Equal(t, 0.0, out.Wear)
		require.Equal(t, 0, next.Groups[0].Units)
		require.Equal(t, 6, next.Eliminated)
	})

	t.Run("input state is not modified", func(t *testing.T) {
		state := scenarioState()
		before := state.Hash()

		_, out := Resolve(state, colony.Order{state.Groups[0].ID: 6}, colony.Breach, trial.NewSource(3))

		require.NotNil(t, out)
		require.Equal(t, before, state.Hash())
		require.Equal(t, 6, state.Groups[0].Units)
	})
}

func TestResolveNoOp(t *testing.T) {
	cases := map[string]func(colony.State) colony.Order{
		"unknown origin": func(s colony.State) colony.Order {
			return colony.Order{uuid.New(): 5}
		},
		"request above available units": func(s colony.State) colony.Order {
			return colony.Order{s.Groups[0].ID: 7}
		},
		"non-positive requests": func(s colony.State) colony.Order {
			return colony.Order{s.Groups[0].ID: 0, uuid.New(): -2}
		},
		"empty order": func(s colony.State) colony.Order {
			return colony.Order{}
		},
	}

	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			state := scenarioState()
			before := state.Hash()
			src := trial.NewSequence(0.3)

			next, out := Resolve(state, build(state), colony.Reconnaissance, src)

			require.Nil(t, out)
			require.Equal(t, before, next.Hash(), "State should be unchanged")
			require.Equal(t, before, state.Hash(), "State should be unchanged")
			require.Equal(t, 0, src.Drawn(), "No randomness should be consumed")
		})
	}

	t.Run("unknown plan", func(t *testing.T) {
		state := scenarioState()
		before := state.Hash()
		src := trial.NewSequence(0.3)

		next, out := Resolve(state, colony.Order{state.Groups[0].ID: 6}, colony.Plan(9), src)

		require.Nil(t, out)
		require.Equal(t, before, next.Hash())
		require.Equal(t, 0, src.Drawn())
	})
}

func TestResolvePartialOrder(t *testing.T) {
	state := twoGroupState(1)
	a, b := state.Groups[0].ID, state.Groups[1].ID
	order := colony.Order{a: 3, b: 9, uuid.New(): 2}

	next, out := Resolve(state, order, colony.Reconnaissance, trial.NewSource(11))

	require.NotNil(t, out)
	require.Len(t, out.Squads, 1, "Only the valid entry should deploy")
	require.Equal(t, a, out.Squads[0].OriginID)
	require.Equal(t, 3, out.Sent)
	require.Equal(t, 3+out.Returned, next.Groups[0].Units)
	require.Equal(t, 8, next.Groups[1].Units, "Dropped entries reserve nothing")
}

func TestResolvePlanWearBonusAppliedOnce(t *testing.T) {
	state := twoGroupState(3)
	order := colony.Order{state.Groups[0].ID: 4, state.Groups[1].ID: 5}
	src := trial.NewSequence(0.0) // breach succeeds, every unit falls in the field

	next, out := Resolve(state, order, colony.Breach, src)

	require.Equal(t, 1+4+5, src.Drawn(), "A single plan roll serves every squad")
	require.True(t, out.PlanSucceeded)
	require.Equal(t, 2.0, out.PlanWearBonus)
	require.Equal(t, 2.0, out.Wear, "Wear bonus is added once, not per squad")
	require.Equal(t, 2.0, next.Wear)
	require.Equal(t, 9, next.Eliminated)
}

func TestResolveSequences(t *testing.T) {
	t.Run("cumulative eliminations never decrease and wear stays bounded", func(t *testing.T) {
		state := colony.State{
			Resources: 0,
			Wear:      90,
			Threat:    3,
			Wave:      1,
			Groups: []colony.OriginGroup{
				colony.NewOriginGroup("A", 5, 400, 400),
				colony.NewOriginGroup("B", 2, 250, 250),
			},
		}
		src := trial.NewSource(99)
		for i := 0; i < 100; i++ {
			for j := range state.Groups {
				state.Groups[j].Units = state.Groups[j].Capacity
			}
			order := colony.Order{}
			for _, g := range state.Groups {
				order[g.ID] = g.Units
			}
			plan := colony.Plans[i%len(colony.Plans)]

			next, out := Resolve(state, order, plan, src)

			require.NotNil(t, out)
			requirePartition(t, out)
			require.GreaterOrEqual(t, next.Eliminated, state.Eliminated)
			require.GreaterOrEqual(t, next.Wear, 0.0)
			require.LessOrEqual(t, next.Wear, colony.MaxWear)
			require.Equal(t, state.Wave+1, next.Wave)
			for _, g := range next.Groups {
				require.LessOrEqual(t, g.Units, g.Capacity)
			}
			state = next
		}
		require.True(t, state.Breached())
	})
}

func TestOutcomeByOrigin(t *testing.T) {
	state := twoGroupState(2)
	a, b := state.Groups[0].ID, state.Groups[1].ID

	_, out := Resolve(state, colony.Order{a: 2, b: 8}, colony.Breach, trial.NewSource(5))

	byOrigin := out.ByOrigin()
	require.Len(t, byOrigin, 2)
	require.Equal(t, 2, byOrigin[a].Sent)
	require.Equal(t, 8, byOrigin[b].Sent)
	require.Equal(t, "B", byOrigin[b].Name)
}
