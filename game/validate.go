package game

// IsLegal reports whether p, standing on from, may move to to. It accepts
// exactly the destinations Destinations generates.
func IsLegal(pos Position, from, to Square, p Piece) bool {
	onBoard, ok := pos.Board.At(from)
	if !ok || onBoard.ID != p.ID || p.Position != from {
		return false
	}
	return containsSquare(Destinations(pos, onBoard), to)
}
