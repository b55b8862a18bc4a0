package agent

import "checkers/game"

// easy plays uniformly at random and places its pieces at random.
type easy struct {
	base
}

func (a *easy) ChooseMove(state *game.GameState) (game.Candidate, bool) {
	return a.pick(a.candidates(state))
}

func (a *easy) ChoosePlacement(state *game.GameState, roster []game.Piece) map[game.PieceID]game.Square {
	return a.shuffledPlacement(state, roster)
}
