package engine

import (
	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Local runs a whole game in process between two agents.
type Local struct {
	master    *gamemaster.Master
	agents    [2]agent.Agent
	maxTurns  int
	collector metrics.Collector
}

// Option configures a Local engine.
type Option func(e *Local)

// WithMaxTurns bounds the number of moves played before the game is cut off.
func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithCollector records the game's metrics in c.
func WithCollector(c metrics.Collector) Option {
	return func(e *Local) {
		if c != nil {
			e.collector = c
		}
	}
}

// LocalEngine pits red against blue on master's game.
func LocalEngine(master *gamemaster.Master, red, blue agent.Agent, options ...Option) (*Local, error) {
	if master == nil {
		return nil, fmt.Errorf("local engine: nil game master")
	}
	if red == nil || blue == nil {
		return nil, fmt.Errorf("local engine: need two agents")
	}
	if red.Player() != game.Red || blue.Player() != game.Blue {
		return nil, fmt.Errorf("local engine: agents play %s and %s, want red and blue", red.Player(), blue.Player())
	}

	e := &Local{
		master:    master,
		agents:    [2]agent.Agent{red, blue},
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire game, from the draft through the last move.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	e.collector.Start(e.master.ID())

	if err := e.setup(); err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	log.Info().Str("game", e.master.ID()).Msgf("%s is starting", game.Red)

	turn := 1
	state := e.master.State()
	for !state.IsOver() && turn <= e.maxTurns {
		current := e.agents[state.Active]

		start := time.Now()
		candidates := len(state.LegalMoves(state.Active))
		choice, ok := current.ChooseMove(state)
		elapsed := time.Since(start)

		var err error
		if !ok {
			log.Debug().Str("game", e.master.ID()).Str("player", state.Active.String()).Msg("no move available")
			state, err = e.master.DeclareImmobilized(state.Active)
			if err != nil {
				return game.NoPlayer, metrics.GameMetric{}, nil, fmt.Errorf("turn %d: %w", turn, err)
			}
			break
		}

		state, err = e.master.Move(choice.Piece.ID, choice.Piece.Position, choice.To)
		if err != nil {
			return game.NoPlayer, metrics.GameMetric{}, nil, fmt.Errorf("turn %d: %w", turn, err)
		}

		mv, _ := state.LastMove()
		e.collector.AddMove(metrics.MoveMetric{
			Step:       turn,
			Player:     mv.Player.String(),
			Variant:    mv.Variant.String(),
			From:       mv.From,
			To:         mv.To,
			Capture:    mv.IsCapture(),
			Crowned:    mv.Crowned,
			Candidates: candidates,
			Duration:   elapsed,
		})
		turn++
	}

	truncated := !state.IsOver()
	if truncated {
		log.Warn().Str("game", e.master.ID()).Msgf("stopped after %d turns without a winner", e.maxTurns)
	}

	return state.Winner, e.collector.Complete(state, truncated), e.collector.Moves(), nil
}

// setup takes the game from wherever it sits to the first move of Play.
func (e *Local) setup() error {
	if _, err := e.master.Reset(); err != nil {
		return err
	}
	if _, err := e.master.Start(); err != nil {
		return err
	}

	for _, a := range e.agents {
		sel := a.ChooseDraft(e.master.State())
		if _, err := e.master.SetDraft(a.Player(), sel); err != nil {
			return fmt.Errorf("%s draft: %w", a.Player(), err)
		}
	}
	if _, err := e.master.FinishDraft(); err != nil {
		return err
	}

	for _, a := range e.agents {
		state := e.master.State()
		roster := state.Unplaced(a.Player())
		placement := a.ChoosePlacement(state, roster)
		// Roster order, not map order.
		for _, p := range roster {
			s, ok := placement[p.ID]
			if !ok {
				continue
			}
			if _, err := e.master.Place(p.ID, s); err != nil {
				return fmt.Errorf("%s placement: %w", a.Player(), err)
			}
		}
	}

	_, err := e.master.StartPlay()
	return err
}

var _ Engine = (*Local)(nil)
