package main

import (
	"checkers/config"
	"checkers/experiments"
	"checkers/gamemaster"
	"checkers/results"
	"checkers/store"
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func setupLogging(cfg config.Config) {
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	if !cfg.LogJSON {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func run(ctx context.Context, cfg config.Config) error {
	exp := experiments.DefaultExperiment()
	if cfg.ExperimentFile != "" {
		loaded, err := experiments.Load(cfg.ExperimentFile)
		if err != nil {
			return err
		}
		exp = loaded
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opts := experiments.Options{
		OutputDir: cfg.OutputDir,
		MaxTurns:  cfg.MaxTurns,
		Seed:      seed,
	}

	if cfg.ResultsDB != "" {
		db, err := results.Open(cfg.ResultsDB)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.Results = db
	}

	if cfg.RedisURL != "" {
		s, err := store.Open(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer s.Close()
		opts.Listeners = []gamemaster.Listener{store.NewPublisher(s, true)}
		log.Info().Msg("publishing game updates to redis")
	}

	log.Info().Str("experiment", exp.Name).Int("games", exp.Games).Uint64("seed", seed).Msg("running")
	report, err := experiments.Run(ctx, exp, opts)
	if err != nil {
		return err
	}

	if opts.Results != nil {
		sum, err := opts.Results.Summarize(ctx, exp.Name)
		if err != nil {
			return err
		}
		log.Info().Int("games", sum.Games).Int("red_wins", sum.RedWins).Int("blue_wins", sum.BlueWins).Int("unfinished", sum.Unfinished).Msg("all-time results")
	}
	log.Info().Str("dir", report.Dir).Int("games", len(report.Games)).Msg("done")
	return nil
}
