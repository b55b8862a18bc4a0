package game

import (
	"fmt"
	"strings"
)

// Size is the number of rows and columns of the board.
const Size = 8

// Square is a board coordinate.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// IsDark reports whether the square is playable.
func (s Square) IsDark() bool {
	return (s.Row+s.Col)%2 == 1
}

// Offset returns the square shifted by the given deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Board is the 8x8 grid of optional pieces. It is a value type: copying a
// Board copies the grid, and the pieces it points to are never modified.
type Board struct {
	Squares [Size][Size]*Piece `json:"squares"`
}

// At returns the piece on s, if any. Off-board squares are empty.
func (b Board) At(s Square) (Piece, bool) {
	if !s.InBounds() {
		return Piece{}, false
	}
	p := b.Squares[s.Row][s.Col]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// IsEmpty reports whether s is on the board and unoccupied.
func (b Board) IsEmpty(s Square) bool {
	return s.InBounds() && b.Squares[s.Row][s.Col] == nil
}

// Put returns a board with p stored at p.Position, replacing any occupant.
// Off-board positions leave the board unchanged.
func (b Board) Put(p Piece) Board {
	if !p.Position.InBounds() {
		return b
	}
	stored := p
	b.Squares[p.Position.Row][p.Position.Col] = &stored
	return b
}

// Remove returns a board with s emptied.
func (b Board) Remove(s Square) Board {
	if s.InBounds() {
		b.Squares[s.Row][s.Col] = nil
	}
	return b
}

// Pieces returns every piece on the board in row-major order.
func (b Board) Pieces() []Piece {
	var pieces []Piece
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p := b.Squares[r][c]; p != nil {
				pieces = append(pieces, *p)
			}
		}
	}
	return pieces
}

// PiecesOf returns the pieces owned by player in row-major order.
func (b Board) PiecesOf(player Player) []Piece {
	var pieces []Piece
	for _, p := range b.Pieces() {
		if p.Owner == player {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Count returns how many pieces player has on the board.
func (b Board) Count(player Player) int {
	return len(b.PiecesOf(player))
}

// Find locates a piece by id.
func (b Board) Find(id PieceID) (Piece, bool) {
	for _, p := range b.Pieces() {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

var variantGlyphs = map[Variant]byte{
	Normal:     'n',
	Bagel:      'b',
	Pancake:    'p',
	Bomb:       'x',
	Vinyl:      'v',
	FlyingDisk: 'f',
}

// String renders the board with row 7 on top. Red pieces are lowercase,
// blue pieces uppercase.
func (b Board) String() string {
	var sb strings.Builder
	for r := Size - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Size; c++ {
			p, ok := b.At(Sq(r, c))
			switch {
			case !ok && Sq(r, c).IsDark():
				sb.WriteByte('.')
			case !ok:
				sb.WriteByte(' ')
			default:
				g := variantGlyphs[p.Variant]
				if p.Owner == Blue {
					g -= 'a' - 'A'
				}
				sb.WriteByte(g)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  01234567\n")
	return sb.String()
}
