package config

import (
	"os"
	"path/filepath"
	"testing"

	"raid/colony"

	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadEnv()

		require.NoError(t, err)
		require.Equal(t, uint64(1), cfg.Seed)
		require.Equal(t, 10, cfg.Campaigns)
		require.Equal(t, 200, cfg.MaxWaves)
		require.Equal(t, "advisor", cfg.Plan)
		require.Equal(t, "info", cfg.LogLevel)
		require.Empty(t, cfg.OutputDir)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RAID_SEED", "77")
		t.Setenv("RAID_PLAN", "breach")
		t.Setenv("RAID_OUTPUT_DIR", "/tmp/raid")
		t.Setenv("RAID_ADVISOR_GOROUTINES", "16")

		cfg, err := LoadEnv()

		require.NoError(t, err)
		require.Equal(t, uint64(77), cfg.Seed)
		require.Equal(t, "breach", cfg.Plan)
		require.Equal(t, "/tmp/raid", cfg.OutputDir)
		require.Equal(t, 16, cfg.AdvisorGoroutines)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("RAID_CAMPAIGNS", "many")

		_, err := LoadEnv()

		require.Error(t, err)
	})
}

const sampleScenario = `
name: siege
resources: 250
structural_wear: 40
threat_level: 4
cumulative_eliminated: 12
wave: 6
origin_groups:
  - name: North
    level: 3
    capacity: 12
    units: 10
  - name: South
    level: 1
    capacity: 6
    units: 0
`

func TestParseScenario(t *testing.T) {
	t.Run("builds the colony", func(t *testing.T) {
		s, err := ParseScenario([]byte(sampleScenario))
		require.NoError(t, err)

		state, err := s.Colony()

		require.NoError(t, err)
		require.Equal(t, 250, state.Resources)
		require.Equal(t, 40.0, state.Wear)
		require.Equal(t, 4, state.Threat)
		require.Equal(t, 12, state.Eliminated)
		require.Equal(t, 6, state.Wave)
		require.Len(t, state.Groups, 2)
		require.Equal(t, "North", state.Groups[0].Name)
		require.Equal(t, 10, state.Groups[0].Units)
		require.NotEqual(t, state.Groups[0].ID, state.Groups[1].ID)
	})

	t.Run("missing wave defaults to the first", func(t *testing.T) {
		s, err := ParseScenario([]byte("resources: 5\nthreat_level: 1\n"))

		require.NoError(t, err)
		require.Equal(t, 1, s.Wave)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		_, err := ParseScenario([]byte("resources: 5\nhouse_level: 3\n"))
		require.Error(t, err)
	})

	t.Run("invalid colonies are rejected", func(t *testing.T) {
		s := DefaultScenario()
		s.Groups[0].Units = 99

		_, err := s.Colony()
		require.ErrorIs(t, err, colony.ErrInvalidState)

		s = DefaultScenario()
		s.Groups[1].Level = 0
		_, err = s.Colony()
		require.ErrorIs(t, err, colony.ErrInvalidState)

		s = DefaultScenario()
		s.Threat = 0
		_, err = s.Colony()
		require.ErrorIs(t, err, colony.ErrInvalidState)
	})
}

func TestDefaultScenario(t *testing.T) {
	state, err := DefaultScenario().Colony()
	require.NoError(t, err)

	fresh := colony.NewState()
	require.Equal(t, fresh.Resources, state.Resources)
	require.Equal(t, fresh.Threat, state.Threat)
	require.Equal(t, fresh.TotalUnits(), state.TotalUnits())
	require.Equal(t, len(fresh.Groups), len(state.Groups))
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siege.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScenario), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	require.Equal(t, "siege", s.Name)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
