package game

// variantRules is the per-variant behaviour of the rules engine.
type variantRules struct {
	// moves lists candidate destinations for a piece of this variant.
	moves func(pos Position, p Piece) []Square
	// jump returns the square jumped over when from->to has capture geometry.
	jump func(from, to Square) (Square, bool)
	// crowns reports whether the variant is promoted on its far rank.
	crowns bool
}

// rules is indexed by Variant and must have an entry for every variant.
var rules = [numVariants]variantRules{
	Normal:     {moves: normalMoves, jump: diagonalJump, crowns: true},
	Bagel:      {moves: bagelMoves, jump: diagonalJump, crowns: true},
	Pancake:    {moves: pancakeMoves, jump: pancakeJump, crowns: true},
	Bomb:       {moves: immobile, jump: diagonalJump},
	Vinyl:      {moves: immobile, jump: diagonalJump},
	FlyingDisk: {moves: immobile, jump: diagonalJump},
}

func rulesFor(v Variant) (variantRules, bool) {
	if !v.Valid() {
		return variantRules{}, false
	}
	return rules[v], true
}

// CanCrown reports whether pieces of variant v are promoted on the far rank.
func CanCrown(v Variant) bool {
	r, ok := rulesFor(v)
	return ok && r.crowns
}

// IsMobile reports whether variant v has any movement rule at all.
// Bomb, vinyl and flying-disk have none yet and never move.
func IsMobile(v Variant) bool {
	switch v {
	case Normal, Bagel, Pancake:
		return true
	default:
		return false
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
