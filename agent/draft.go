package agent

import "checkers/game"

// drafts are the fixed roster selections of each tier. Hard leans on the
// more valuable variants.
var drafts = map[Level]game.Selection{
	Easy: {
		game.Normal: 12,
	},
	Medium: {
		game.Normal:  8,
		game.Bagel:   2,
		game.Pancake: 2,
	},
	Hard: {
		game.Normal:     4,
		game.Bagel:      2,
		game.Pancake:    3,
		game.Bomb:       1,
		game.Vinyl:      1,
		game.FlyingDisk: 1,
	},
}

// Draft returns the roster selection played by level.
func Draft(level Level) game.Selection {
	if sel, ok := drafts[level]; ok {
		return sel
	}
	return drafts[Easy]
}
