package gamemaster

import (
	"checkers/game"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Update is emitted after every successful command.
type Update struct {
	GameID  string          `json:"game_id"`
	Version int             `json:"version"`
	Command string          `json:"command"`
	State   *game.GameState `json:"state"`
}

// Listener receives every update in commit order. Listeners run while the
// master is locked and must not issue commands themselves.
type Listener interface {
	Notify(u Update)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(u Update)

func (f ListenerFunc) Notify(u Update) { f(u) }

// Master owns the canonical state of one game. Every command reads the
// current state, computes its successor and replaces it in one assignment;
// readers only ever see complete states.
type Master struct {
	mu        sync.Mutex
	id        string
	state     *game.GameState
	listeners []Listener
}

// NewMaster creates a game sitting at the menu.
func NewMaster(listeners ...Listener) *Master {
	return &Master{
		id:        uuid.NewString(),
		state:     game.NewGameState(),
		listeners: listeners,
	}
}

// ID is the unique id of the game.
func (m *Master) ID() string {
	return m.id
}

// Subscribe registers a listener for future updates.
func (m *Master) Subscribe(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// State returns the current state. The value is immutable and safe to keep.
func (m *Master) State() *game.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

type transition func(gs game.GameState) (*game.GameState, error)

func (m *Master) apply(command string, t transition) (*game.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := t(*m.state)
	if err != nil {
		logger := log.Debug()
		if game.IsContractViolation(err) {
			logger = log.Error()
		}
		logger.Err(err).Str("game", m.id).Str("command", command).Int("version", m.state.Version).Msg("command refused")
		return nil, err
	}

	previous := m.state.Phase
	m.state = next
	if next.Phase != previous {
		log.Debug().Str("game", m.id).Str("from", previous.String()).Str("to", next.Phase.String()).Msg("phase changed")
	}
	if next.IsOver() && previous != game.GameOverPhase {
		log.Info().Str("game", m.id).Str("winner", next.Winner.String()).Str("cause", next.Cause.String()).Int("moves", len(next.History)).Msg("game over")
	}

	u := Update{GameID: m.id, Version: next.Version, Command: command, State: next}
	for _, l := range m.listeners {
		l.Notify(u)
	}
	return next, nil
}

// Start leaves the menu (or a finished game) for the draft.
func (m *Master) Start() (*game.GameState, error) {
	return m.apply("start", game.GameState.StartGame)
}

// Reset returns to the menu from any phase.
func (m *Master) Reset() (*game.GameState, error) {
	return m.apply("reset", func(gs game.GameState) (*game.GameState, error) {
		return gs.Reset(), nil
	})
}

// AdjustDraft changes one variant count of player's draft by delta.
func (m *Master) AdjustDraft(player game.Player, v game.Variant, delta int) (*game.GameState, error) {
	return m.apply("adjust-draft", func(gs game.GameState) (*game.GameState, error) {
		return gs.AdjustDraft(player, v, delta)
	})
}

// SetDraft replaces player's whole draft.
func (m *Master) SetDraft(player game.Player, sel game.Selection) (*game.GameState, error) {
	return m.apply("set-draft", func(gs game.GameState) (*game.GameState, error) {
		return gs.SetDraft(player, sel)
	})
}

// FinishDraft moves on to placement when both rosters are complete.
func (m *Master) FinishDraft() (*game.GameState, error) {
	return m.apply("finish-draft", game.GameState.FinishDraft)
}

// Place puts one drafted piece on the board.
func (m *Master) Place(id game.PieceID, s game.Square) (*game.GameState, error) {
	return m.apply("place", func(gs game.GameState) (*game.GameState, error) {
		return gs.Place(id, s)
	})
}

// StartPlay begins the Play phase.
func (m *Master) StartPlay() (*game.GameState, error) {
	return m.apply("start-play", game.GameState.StartPlay)
}

// Move plays piece id from one square to another.
func (m *Master) Move(id game.PieceID, from, to game.Square) (*game.GameState, error) {
	return m.apply("move", func(gs game.GameState) (*game.GameState, error) {
		return gs.Move(id, from, to)
	})
}

// DeclareImmobilized ends the game against a player left without moves.
func (m *Master) DeclareImmobilized(player game.Player) (*game.GameState, error) {
	return m.apply("declare-immobilized", func(gs game.GameState) (*game.GameState, error) {
		return gs.DeclareImmobilized(player)
	})
}

// LegalMoves lists the destinations of piece id in the current position.
func (m *Master) LegalMoves(id game.PieceID) ([]game.Square, error) {
	return m.State().PieceMoves(id)
}
