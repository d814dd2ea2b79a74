package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the runtime configuration of the raid CLI.
type Env struct {
	Seed              uint64 `env:"RAID_SEED" envDefault:"1"`
	Campaigns         int    `env:"RAID_CAMPAIGNS" envDefault:"10"`
	MaxWaves          int    `env:"RAID_MAX_WAVES" envDefault:"200"`
	Plan              string `env:"RAID_PLAN" envDefault:"advisor"`
	AdvisorEpisodes   int    `env:"RAID_ADVISOR_EPISODES" envDefault:"200"`
	AdvisorGoroutines int    `env:"RAID_ADVISOR_GOROUTINES" envDefault:"4"`
	OutputDir         string `env:"RAID_OUTPUT_DIR"`
	Scenario          string `env:"RAID_SCENARIO"`
	LogLevel          string `env:"RAID_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	return cfg, nil
}
