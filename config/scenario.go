package config

import (
	"bytes"
	"fmt"
	"os"

	"raid/colony"

	"gopkg.in/yaml.v3"
)

// Scenario describes a starting colony.
type Scenario struct {
	Name       string        `yaml:"name"`
	Resources  int           `yaml:"resources"`
	Wear       float64       `yaml:"structural_wear"`
	Threat     int           `yaml:"threat_level"`
	Eliminated int           `yaml:"cumulative_eliminated"`
	Wave       int           `yaml:"wave"`
	Groups     []GroupConfig `yaml:"origin_groups"`
}

type GroupConfig struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Capacity int    `yaml:"capacity"`
	Units    int    `yaml:"units"`
}

// DefaultScenario is the colony a new game starts with.
func DefaultScenario() Scenario {
	return Scenario{
		Name:      "default",
		Resources: 100,
		Threat:    2,
		Wave:      1,
		Groups: []GroupConfig{
			{Name: "A", Level: 1, Capacity: 6, Units: 6},
			{Name: "B", Level: 1, Capacity: 8, Units: 8},
		},
	}
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario. Unknown fields are rejected; a
// missing wave defaults to 1.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if s.Wave == 0 {
		s.Wave = 1
	}
	return s, nil
}

// Colony builds the colony described by the scenario, with fresh group ids.
// Units are not capped: a scenario asking for more units than capacity is
// rejected.
func (s Scenario) Colony() (colony.State, error) {
	state := colony.State{
		Resources:  s.Resources,
		Wear:       s.Wear,
		Threat:     s.Threat,
		Eliminated: s.Eliminated,
		Wave:       s.Wave,
	}
	for _, g := range s.Groups {
		group := colony.NewOriginGroup(g.Name, g.Level, g.Capacity, g.Units)
		group.Units = g.Units
		state.Groups = append(state.Groups, group)
	}
	if err := state.Validate(); err != nil {
		return colony.State{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return state, nil
}
