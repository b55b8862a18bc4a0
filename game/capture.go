package game

func diagonalJump(from, to Square) (Square, bool) {
	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	if abs(dRow) == 2 && abs(dCol) == 2 {
		return Sq(from.Row+dRow/2, from.Col+dCol/2), true
	}
	return Square{}, false
}

func pancakeJump(from, to Square) (Square, bool) {
	if mid, ok := diagonalJump(from, to); ok {
		return mid, true
	}
	if to.Row == from.Row && abs(to.Col-from.Col) == 2 {
		return Sq(from.Row, (from.Col+to.Col)/2), true
	}
	return Square{}, false
}

// ResolveCapture returns the piece removed by moving p from -> to on b. A
// capture needs the variant's jump geometry and an opposing piece on the
// jumped square; an empty or friendly midpoint captures nothing.
func ResolveCapture(b Board, p Piece, from, to Square) (Piece, bool) {
	r, ok := rulesFor(p.Variant)
	if !ok {
		return Piece{}, false
	}
	mid, ok := r.jump(from, to)
	if !ok {
		return Piece{}, false
	}
	victim, ok := b.At(mid)
	if !ok || victim.Owner != p.Owner.Opponent() {
		return Piece{}, false
	}
	return victim, true
}

// ApplyMove moves p to the destination and returns the new board together
// with the recorded move. It does not check legality beyond the board
// itself; callers validate with IsLegal first. When p is not on the board at
// its recorded square, or to is off the board or occupied, the board is
// returned unchanged and ok is false.
func ApplyMove(pos Position, p Piece, to Square) (Board, Move, bool) {
	from := p.Position
	if on, ok := pos.Board.At(from); !ok || on.ID != p.ID || !pos.Board.IsEmpty(to) {
		return pos.Board, Move{}, false
	}
	mv := Move{
		PieceID: p.ID,
		Variant: p.Variant,
		Player:  p.Owner,
		From:    from,
		To:      to,
	}

	b := pos.Board.Remove(from)
	if victim, ok := ResolveCapture(pos.Board, p, from, to); ok {
		b = b.Remove(victim.Position)
		mv.Captured = &victim
	}

	moved := p
	moved.Position = to
	if !moved.Crowned && CanCrown(p.Variant) && to.Row == p.Owner.CrownRow() {
		moved.Crowned = true
		mv.Crowned = true
	}
	return b.Put(moved), mv, true
}
