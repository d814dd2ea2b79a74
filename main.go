package main

import (
	"flag"
	"fmt"
	"os"

	"raid/advisor"
	"raid/campaign"
	"raid/colony"
	"raid/config"
	"raid/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const advisorPlan = "advisor"

type options struct {
	campaigns int
	maxWaves  int
	seed      uint64
	plan      string
	scenario  string
	out       string
	episodes  int
	workers   int
}

func main() {
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	opts := options{}
	flag.IntVar(&opts.campaigns, "campaigns", cfg.Campaigns, "number of campaigns to play")
	flag.IntVar(&opts.maxWaves, "max-waves", cfg.MaxWaves, "mission limit per campaign")
	flag.Uint64Var(&opts.seed, "seed", cfg.Seed, "seed of the first campaign, later campaigns add their index")
	flag.StringVar(&opts.plan, "plan", cfg.Plan, "reconnaissance, breach or advisor")
	flag.StringVar(&opts.scenario, "scenario", cfg.Scenario, "YAML scenario file (default: new game colony)")
	flag.StringVar(&opts.out, "out", cfg.OutputDir, "directory for CSV records (empty: none)")
	flag.IntVar(&opts.episodes, "advisor-episodes", cfg.AdvisorEpisodes, "advisor episodes per plan")
	flag.IntVar(&opts.workers, "advisor-goroutines", cfg.AdvisorGoroutines, "advisor worker goroutines")
	flag.Parse()

	setupLogging(cfg.LogLevel)

	if err := run(opts); err != nil {
		log.Error().Err(err).Msg("raid failed")
		os.Exit(1)
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func run(opts options) error {
	if opts.campaigns <= 0 {
		return fmt.Errorf("-campaigns must be > 0, got %d", opts.campaigns)
	}

	scenario := config.DefaultScenario()
	if opts.scenario != "" {
		s, err := config.LoadScenario(opts.scenario)
		if err != nil {
			return err
		}
		scenario = s
	}

	campaignOpts, err := planOptions(opts)
	if err != nil {
		return err
	}
	campaignOpts = append(campaignOpts, campaign.WithMaxWaves(opts.maxWaves))

	log.Info().Msgf("starting %d campaigns of scenario %q with plan %s...", opts.campaigns, scenario.Name, opts.plan)

	campaignRecords := []metrics.CampaignRecord{}
	missionRecords := []metrics.MissionRecord{}
	breached := 0
	for i := 0; i < opts.campaigns; i++ {
		state, err := scenario.Colony()
		if err != nil {
			return err
		}
		result, missions := campaign.New(state, campaign.GreedyPolicy{}, opts.seed+uint64(i), campaignOpts...).Run()
		if result.Breached {
			breached++
		}

		campaignRecords = append(campaignRecords, metrics.CampaignRecord{ID: i + 1, CampaignMetric: result})
		for _, m := range missions {
			missionRecords = append(missionRecords, metrics.MissionRecord{Campaign: i + 1, MissionMetric: m})
		}
	}

	log.Info().Msgf("completed %d campaigns, %d breached the target", opts.campaigns, breached)

	if opts.out == "" {
		return nil
	}
	return writeRecords(opts.out, campaignRecords, missionRecords)
}

func planOptions(opts options) ([]campaign.Option, error) {
	if opts.plan == advisorPlan {
		if opts.episodes <= 0 {
			return nil, fmt.Errorf("-advisor-episodes must be > 0, got %d", opts.episodes)
		}
		a := advisor.New(opts.workers, advisor.WithEpisodes(opts.episodes), advisor.WithSeed(opts.seed))
		return []campaign.Option{campaign.WithAdvisor(a)}, nil
	}
	plan, err := colony.ParsePlan(opts.plan)
	if err != nil {
		return nil, err
	}
	return []campaign.Option{campaign.WithPlan(plan)}, nil
}

func writeRecords(dir string, campaigns []metrics.CampaignRecord, missions []metrics.MissionRecord) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := writer.WriteCampaignRecords(campaigns); err != nil {
		return err
	}
	log.Info().Msg("stored campaign records")
	if err := writer.WriteMissionRecords(missions); err != nil {
		return err
	}
	log.Info().Msgf("stored mission records in %s", writer.Dir())
	return nil
}
