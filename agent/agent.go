package agent

import (
	"checkers/game"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

// Agent is a computer opponent playing one side of the game.
type Agent interface {
	// Player is the side the agent plays.
	Player() game.Player
	// Level is the agent's difficulty tier.
	Level() Level
	// ChooseMove picks one of the agent's legal moves. It returns false when
	// it is not the agent's turn or the agent has no legal move.
	ChooseMove(state *game.GameState) (game.Candidate, bool)
	// ChooseDraft returns the agent's roster selection.
	ChooseDraft(state *game.GameState) game.Selection
	// ChoosePlacement assigns a square to each of the agent's roster pieces.
	ChoosePlacement(state *game.GameState, roster []game.Piece) map[game.PieceID]game.Square
}

// Level is a difficulty tier.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

// Levels lists the tiers from weakest to strongest.
var Levels = []Level{Easy, Medium, Hard}

func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a tier name, case-insensitively, to its Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if strings.EqualFold(strings.TrimSpace(s), l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Option configures an agent built by New.
type Option func(b *base)

// WithSeed makes the agent's random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(b *base) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses the given generator for the agent's random choices.
func WithRand(rng *rand.Rand) Option {
	return func(b *base) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// New returns an agent of the given tier playing player.
func New(level Level, player game.Player, options ...Option) Agent {
	b := base{
		level:  level,
		player: player,
		rng:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(&b)
	}

	switch level {
	case Medium:
		return &medium{base: b}
	case Hard:
		return &hard{base: b}
	default:
		b.level = Easy
		return &easy{base: b}
	}
}

// base carries what every tier shares: its side, its tier and a random source.
type base struct {
	level  Level
	player game.Player
	rng    *rand.Rand
}

func (b *base) Player() game.Player { return b.player }
func (b *base) Level() Level        { return b.level }

// candidates returns the agent's legal moves, or nil when it may not move.
func (b *base) candidates(state *game.GameState) []game.Candidate {
	if state == nil || state.Phase != game.PlayPhase || state.Active != b.player {
		return nil
	}
	return state.LegalMoves(b.player)
}

func (b *base) pick(candidates []game.Candidate) (game.Candidate, bool) {
	if len(candidates) == 0 {
		return game.Candidate{}, false
	}
	return candidates[b.rng.Intn(len(candidates))], true
}

func (b *base) ChooseDraft(*game.GameState) game.Selection {
	return Draft(b.level)
}

// ownPieces keeps the roster pieces that belong to the agent.
func (b *base) ownPieces(roster []game.Piece) []game.Piece {
	var own []game.Piece
	for _, p := range roster {
		if p.Owner == b.player {
			own = append(own, p)
		}
	}
	return own
}

// freeSquares lists the agent's empty placement squares.
func (b *base) freeSquares(state *game.GameState) []game.Square {
	var free []game.Square
	for _, s := range game.EligibleSquares(b.player) {
		if state == nil || state.Board.IsEmpty(s) {
			free = append(free, s)
		}
	}
	return free
}

// shuffledPlacement spreads the agent's pieces over its free squares at random.
func (b *base) shuffledPlacement(state *game.GameState, roster []game.Piece) map[game.PieceID]game.Square {
	free := b.freeSquares(state)
	b.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
	placement := make(map[game.PieceID]game.Square)
	for i, p := range b.ownPieces(roster) {
		if i >= len(free) {
			break
		}
		placement[p.ID] = free[i]
	}
	return placement
}
