package agent

import (
	"checkers/game"
	"checkers/utils"
)

// medium always captures when it can, otherwise it plays at random.
type medium struct {
	base
}

func (a *medium) ChooseMove(state *game.GameState) (game.Candidate, bool) {
	candidates := a.candidates(state)
	if captures := utils.Filter(candidates, game.Candidate.IsCapture); len(captures) > 0 {
		return a.pick(captures)
	}
	return a.pick(candidates)
}

func (a *medium) ChoosePlacement(state *game.GameState, roster []game.Piece) map[game.PieceID]game.Square {
	return a.shuffledPlacement(state, roster)
}
