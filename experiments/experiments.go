package experiments

import (
	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/results"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Experiment is a set of matchups between computer players, each played a
// number of games.
type Experiment struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"` // Per match up
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps []MatchUp             `yaml:"matchups"`
}

// MatchUp names the agent configs playing red and blue by id.
type MatchUp struct {
	Red  int `yaml:"red"`
	Blue int `yaml:"blue"`
}

// DefaultExperiment pits every tier against every tier, both ways round.
func DefaultExperiment() Experiment {
	exp := Experiment{Name: "tiers", Games: meta.GAMES_PER_MATCHUP}
	for i, level := range agent.Levels {
		exp.Agents = append(exp.Agents, metrics.AgentConfig{ID: i + 1, Level: level.String()})
	}
	for _, red := range exp.Agents {
		for _, blue := range exp.Agents {
			exp.MatchUps = append(exp.MatchUps, MatchUp{Red: red.ID, Blue: blue.ID})
		}
	}
	return exp
}

// Load reads an experiment from a YAML file.
func Load(path string) (Experiment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("read experiment: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML experiment.
func Parse(raw []byte) (Experiment, error) {
	var exp Experiment
	if err := yaml.Unmarshal(raw, &exp); err != nil {
		return Experiment{}, fmt.Errorf("decode experiment: %w", err)
	}
	if exp.Games == 0 {
		exp.Games = meta.GAMES_PER_MATCHUP
	}
	if err := exp.Validate(); err != nil {
		return Experiment{}, err
	}
	return exp, nil
}

// Validate checks the experiment refers only to agents it declares.
func (e Experiment) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("experiment name is required")
	}
	if e.Games < 0 {
		return fmt.Errorf("experiment %s: negative game count %d", e.Name, e.Games)
	}
	seen := make(map[int]bool, len(e.Agents))
	for _, a := range e.Agents {
		if seen[a.ID] {
			return fmt.Errorf("experiment %s: duplicate agent id %d", e.Name, a.ID)
		}
		seen[a.ID] = true
		if _, err := agent.ParseLevel(a.Level); err != nil {
			return fmt.Errorf("experiment %s agent %d: %w", e.Name, a.ID, err)
		}
	}
	if len(e.MatchUps) == 0 {
		return fmt.Errorf("experiment %s: no matchups", e.Name)
	}
	for _, m := range e.MatchUps {
		if !seen[m.Red] || !seen[m.Blue] {
			return fmt.Errorf("experiment %s: matchup %d vs %d names an unknown agent", e.Name, m.Red, m.Blue)
		}
	}
	return nil
}

func (e Experiment) agentConfig(id int) metrics.AgentConfig {
	for _, a := range e.Agents {
		if a.ID == id {
			return a
		}
	}
	return metrics.AgentConfig{}
}

// Options are the knobs of one experiment run.
type Options struct {
	OutputDir string // CSV files are skipped when empty
	MaxTurns  int
	Seed      uint64 // Base seed for agents without their own
	Results   *results.Store
	Listeners []gamemaster.Listener // Attached to every game
}

// Report is what an experiment run produced.
type Report struct {
	Games      []metrics.GameRecord
	Moves      []metrics.MoveRecord
	Throughput []Throughput
	Dir        string // Where the CSV files were written
}

// Run plays every matchup of exp and stores the results.
func Run(ctx context.Context, exp Experiment, opts Options) (Report, error) {
	if err := exp.Validate(); err != nil {
		return Report{}, err
	}

	count := 0
	report := Report{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.MatchUps {
		red := exp.agentConfig(matchup.Red)
		blue := exp.agentConfig(matchup.Blue)

		log.Info().Msgf("starting matchup %d of %d between red=%+v and blue=%+v...", mi+1, len(exp.MatchUps), red, blue)

		for i := 0; i < exp.Games; i++ {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			count++
			winner, gameMetric, moveMetrics, err := runGame(red, blue, count, opts)
			if err != nil {
				return report, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			report.Games = append(report.Games, metrics.GameRecord{
				ID:         count,
				Experiment: exp.Name,
				Agent1:     red.ID,
				Agent2:     blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				report.Moves = append(report.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(exp.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	report.Throughput = MeasureThroughput(exp, report.Games, report.Moves)
	for _, tp := range report.Throughput {
		log.Info().Int("agent", tp.Agent).Str("level", tp.Level).Int("moves", tp.Moves).
			Dur("mean_decision", tp.MeanDecision).Float64("moves_per_sec", tp.MovesPerSecond).Msg("throughput")
	}

	if opts.OutputDir != "" {
		dir, err := write(exp, opts.OutputDir, report)
		if err != nil {
			return report, err
		}
		report.Dir = dir
	}

	if opts.Results != nil {
		if err := opts.Results.Insert(ctx, report.Games); err != nil {
			return report, fmt.Errorf("store results: %w", err)
		}
		log.Info().Msg("stored results")
	}
	return report, nil
}

func write(exp Experiment, root string, report Report) (string, error) {
	writer, err := metrics.NewWriter(root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(red, blue metrics.AgentConfig, n int, opts Options) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	redAgent, err := createAgent(red, game.Red, n, opts.Seed)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}
	blueAgent, err := createAgent(blue, game.Blue, n, opts.Seed)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	master := gamemaster.NewMaster(opts.Listeners...)
	e, err := engine.LocalEngine(master, redAgent, blueAgent,
		engine.WithMaxTurns(opts.MaxTurns),
		engine.WithCollector(metrics.NewCollector()),
	)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

// createAgent builds the agent for config. Seeds are derived per game so a
// seeded experiment replays identically.
func createAgent(config metrics.AgentConfig, player game.Player, n int, base uint64) (agent.Agent, error) {
	level, err := agent.ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	options := []agent.Option{}
	seed := config.Seed
	if seed == 0 {
		seed = base
	}
	if seed != 0 {
		options = append(options, agent.WithSeed(seed+uint64(n)*2+uint64(player)))
	}
	return agent.New(level, player, options...), nil
}
