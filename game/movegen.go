package game

type direction struct {
	dRow, dCol int
}

var lateral = []direction{{0, -1}, {0, 1}}

// Destinations returns every square piece p may move to in pos. The result
// is computed without touching pos, and off-board or occupied squares are
// simply left out.
func Destinations(pos Position, p Piece) []Square {
	r, ok := rulesFor(p.Variant)
	if !ok || (p.Owner != Red && p.Owner != Blue) {
		return nil
	}
	return r.moves(pos, p)
}

// diagonals returns the diagonal directions p may travel: forward only,
// or all four once crowned.
func diagonals(p Piece) []direction {
	f := p.Owner.Forward()
	dirs := []direction{{f, -1}, {f, 1}}
	if p.Crowned {
		dirs = append(dirs, direction{-f, -1}, direction{-f, 1})
	}
	return dirs
}

// stepsAndJumps emits, for each direction, the adjacent square when empty or
// the square beyond an adjacent opposing piece when that one is empty.
func stepsAndJumps(b Board, p Piece, dirs []direction) []Square {
	var out []Square
	for _, d := range dirs {
		step := p.Position.Offset(d.dRow, d.dCol)
		if b.IsEmpty(step) {
			out = append(out, step)
			continue
		}
		over, ok := b.At(step)
		if !ok || over.Owner != p.Owner.Opponent() {
			continue
		}
		if land := step.Offset(d.dRow, d.dCol); b.IsEmpty(land) {
			out = append(out, land)
		}
	}
	return out
}

func normalMoves(pos Position, p Piece) []Square {
	return stepsAndJumps(pos.Board, p, diagonals(p))
}

func bagelMoves(pos Position, p Piece) []Square {
	out := normalMoves(pos, p)
	if sq, ok := echoSquare(pos, p); ok && !containsSquare(out, sq) {
		out = append(out, sq)
	}
	return out
}

// echoSquare is the bagel's special move: straight back onto the square the
// opponent just left. An uncrowned bagel reaches it only one step forward; a
// crowned bagel reaches it at any distance along a clear diagonal.
func echoSquare(pos Position, p Piece) (Square, bool) {
	last := pos.Last
	if last == nil || last.Player != p.Owner.Opponent() {
		return Square{}, false
	}
	target := last.From
	if !pos.Board.IsEmpty(target) {
		return Square{}, false
	}
	dRow := target.Row - p.Position.Row
	dCol := target.Col - p.Position.Col
	if dRow == 0 || abs(dRow) != abs(dCol) {
		return Square{}, false
	}
	sr, sc := sign(dRow), sign(dCol)
	if !p.Crowned && (sr != p.Owner.Forward() || abs(dRow) != 1) {
		return Square{}, false
	}
	for s := p.Position.Offset(sr, sc); s != target; s = s.Offset(sr, sc) {
		if !pos.Board.IsEmpty(s) {
			return Square{}, false
		}
	}
	return target, true
}

func pancakeMoves(pos Position, p Piece) []Square {
	out := normalMoves(pos, p)
	for _, sq := range stepsAndJumps(pos.Board, p, lateral) {
		if !containsSquare(out, sq) {
			out = append(out, sq)
		}
	}
	return out
}

func immobile(Position, Piece) []Square {
	return nil
}

func containsSquare(squares []Square, s Square) bool {
	for _, sq := range squares {
		if sq == s {
			return true
		}
	}
	return false
}
