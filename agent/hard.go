package agent

import (
	"checkers/game"
	"checkers/utils"
)

// ValueOrder ranks the variants from least to most valuable.
var ValueOrder = []game.Variant{
	game.Normal,
	game.Bagel,
	game.Vinyl,
	game.Bomb,
	game.Pancake,
	game.FlyingDisk,
}

// Value is the rank of v in ValueOrder.
func Value(v game.Variant) int {
	return utils.FindIndex(ValueOrder, v)
}

// hard captures with its cheapest piece, then heads for the crowning rank,
// then the center columns, then any forward square.
type hard struct {
	base
}

func (a *hard) ChooseMove(state *game.GameState) (game.Candidate, bool) {
	candidates := a.candidates(state)
	if len(candidates) == 0 {
		return game.Candidate{}, false
	}

	if captures := utils.Filter(candidates, game.Candidate.IsCapture); len(captures) > 0 {
		return a.pick(cheapest(captures))
	}

	preferences := []func(game.Candidate) bool{
		a.crowns,
		toCenter,
		a.advances,
	}
	for _, prefer := range preferences {
		if preferred := utils.Filter(candidates, prefer); len(preferred) > 0 {
			return a.pick(preferred)
		}
	}
	return a.pick(candidates)
}

// cheapest keeps the candidates moving the least valuable variant present.
func cheapest(candidates []game.Candidate) []game.Candidate {
	low := len(ValueOrder)
	for _, c := range candidates {
		low = min(low, Value(c.Piece.Variant))
	}
	return utils.Filter(candidates, func(c game.Candidate) bool {
		return Value(c.Piece.Variant) == low
	})
}

func (a *hard) crowns(c game.Candidate) bool {
	return !c.Piece.Crowned && game.CanCrown(c.Piece.Variant) && c.To.Row == a.player.CrownRow()
}

func toCenter(c game.Candidate) bool {
	return isCenterColumn(c.To.Col)
}

func (a *hard) advances(c game.Candidate) bool {
	return (c.To.Row-c.Piece.Position.Row)*a.player.Forward() > 0
}

func isCenterColumn(col int) bool {
	return col >= 2 && col <= 5
}

func isEdgeColumn(col int) bool {
	return col == 0 || col == game.Size-1
}

// placementRule pairs a variant with the squares hard prefers for it.
type placementRule struct {
	variant game.Variant
	prefer  func(game.Square) bool
}

// placementOrder lists the variants in the order hard places them. A variant
// whose preferred squares are taken goes to the first free square left.
func (a *hard) placementOrder() []placementRule {
	rows := a.player.HomeRows()
	back, front := rows[0], rows[len(rows)-1]
	return []placementRule{
		{game.FlyingDisk, func(s game.Square) bool { return s.Row == back }},
		{game.Pancake, func(s game.Square) bool { return isCenterColumn(s.Col) }},
		{game.Bomb, func(s game.Square) bool { return s.Row == front }},
		{game.Vinyl, func(s game.Square) bool { return isEdgeColumn(s.Col) }},
		{game.Bagel, func(s game.Square) bool { return isCenterColumn(s.Col) }},
		{game.Normal, func(game.Square) bool { return true }},
	}
}

func (a *hard) ChoosePlacement(state *game.GameState, roster []game.Piece) map[game.PieceID]game.Square {
	free := a.freeSquares(state)
	own := a.ownPieces(roster)
	placement := make(map[game.PieceID]game.Square)

	take := func(prefer func(game.Square) bool) (game.Square, bool) {
		idx := -1
		for i, s := range free {
			if prefer(s) {
				idx = i
				break
			}
		}
		if idx < 0 && len(free) > 0 {
			idx = 0
		}
		if idx < 0 {
			return game.Square{}, false
		}
		s := free[idx]
		free = append(free[:idx], free[idx+1:]...)
		return s, true
	}

	for _, rule := range a.placementOrder() {
		for _, p := range own {
			if p.Variant != rule.variant {
				continue
			}
			if s, ok := take(rule.prefer); ok {
				placement[p.ID] = s
			}
		}
	}
	return placement
}
