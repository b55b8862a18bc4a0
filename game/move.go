package game

// Move is one committed move, recorded in the game history.
type Move struct {
	PieceID  PieceID `json:"piece_id"`
	Variant  Variant `json:"variant"`
	Player   Player  `json:"player"`
	From     Square  `json:"from"`
	To       Square  `json:"to"`
	Captured *Piece  `json:"captured,omitempty"`
	Crowned  bool    `json:"crowned,omitempty"`
}

// IsCapture reports whether the move removed an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured != nil
}

// Position is everything the move generator looks at: the board and the
// move played immediately before.
type Position struct {
	Board Board
	Last  *Move
}

// Candidate is a legal (piece, destination) pair for the side to move, as
// offered to a human or an agent.
type Candidate struct {
	Piece    Piece
	To       Square
	Captured *Piece
}

// IsCapture reports whether playing the candidate removes an opposing piece.
func (c Candidate) IsCapture() bool {
	return c.Captured != nil
}
