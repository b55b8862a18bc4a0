package metrics

import (
	"checkers/game"
	"time"
)

// AgentConfig describes one computer player taking part in an experiment.
type AgentConfig struct {
	ID    int    `yaml:"id"`
	Level string `yaml:"level"`
	Seed  uint64 `yaml:"seed"`
}

// MoveMetric records one committed move of a game.
type MoveMetric struct {
	Step       int
	Player     string
	Variant    string
	From       game.Square
	To         game.Square
	Capture    bool
	Crowned    bool
	Candidates int           // Legal moves available to the player
	Duration   time.Duration // Time the agent took to decide
}

// GameMetric summarises a finished (or truncated) game.
type GameMetric struct {
	GameID         string
	StartingPlayer string
	Winner         string // "none" when the game hit the turn limit
	Cause          string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	RedCaptures    int
	BlueCaptures   int
	Truncated      bool
}

type Collector interface {
	Start(gameID string)
	AddMove(metric MoveMetric)
	Moves() []MoveMetric
	Complete(final *game.GameState, truncated bool) GameMetric
}

type collector struct {
	gameID    string
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(gameID string) {
	c.gameID = gameID
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(metric MoveMetric) {
	c.moves = append(c.moves, metric)
}

func (c *collector) Moves() []MoveMetric {
	return append([]MoveMetric(nil), c.moves...)
}

func (c *collector) Complete(final *game.GameState, truncated bool) GameMetric {
	end := time.Now()
	m := GameMetric{
		GameID:         c.gameID,
		StartingPlayer: game.Red.String(),
		Winner:         game.NoPlayer.String(),
		Cause:          game.CauseNone.String(),
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		Truncated:      truncated,
	}
	if final != nil {
		m.Winner = final.Winner.String()
		m.Cause = final.Cause.String()
		m.TotalMoves = len(final.History)
		m.RedCaptures = final.Scores[game.Red]
		m.BlueCaptures = final.Scores[game.Blue]
	}
	return m
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(gameID string)                                       {}
func (c *dummyCollector) AddMove(metric MoveMetric)                                 {}
func (c *dummyCollector) Moves() []MoveMetric                                       { return nil }
func (c *dummyCollector) Complete(final *game.GameState, truncated bool) GameMetric { return GameMetric{} }
