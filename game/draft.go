package game

import (
	"encoding/json"
	"fmt"
)

// RosterSize is the number of pieces each player drafts.
const RosterSize = 12

// Selection holds a per-variant piece count.
type Selection [numVariants]int

// DraftLimits is the maximum number of pieces of each variant a player may draft.
var DraftLimits = Selection{
	Normal:     12,
	Bagel:      4,
	Pancake:    4,
	Bomb:       2,
	Vinyl:      2,
	FlyingDisk: 2,
}

// Total is the number of pieces selected across all variants.
func (s Selection) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Check verifies every count is within DraftLimits and the total does not
// exceed RosterSize.
func (s Selection) Check() error {
	for _, v := range Variants {
		if s[v] < 0 || s[v] > DraftLimits[v] {
			return fmt.Errorf("%w: %d %s pieces, allowed 0..%d", ErrDraftLimit, s[v], v, DraftLimits[v])
		}
	}
	if total := s.Total(); total > RosterSize {
		return fmt.Errorf("%w: %d pieces selected, roster holds %d", ErrDraftLimit, total, RosterSize)
	}
	return nil
}

// MarshalJSON encodes the selection as a variant-name keyed object.
func (s Selection) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(Variants))
	for _, v := range Variants {
		if s[v] != 0 {
			m[v.String()] = s[v]
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a variant-name keyed object.
func (s *Selection) UnmarshalJSON(b []byte) error {
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	var out Selection
	for name, n := range m {
		v, err := ParseVariant(name)
		if err != nil {
			return err
		}
		out[v] = n
	}
	*s = out
	return nil
}

// Unplaced is the position of a drafted piece not yet on the board.
var Unplaced = Square{Row: -1, Col: -1}

// NewRoster creates the pieces described by sel for player, numbering them
// from firstID upward in variant order.
func NewRoster(player Player, sel Selection, firstID PieceID) []Piece {
	roster := make([]Piece, 0, sel.Total())
	id := firstID
	for _, v := range Variants {
		for i := 0; i < sel[v]; i++ {
			roster = append(roster, Piece{
				ID:       id,
				Variant:  v,
				Owner:    player,
				Position: Unplaced,
			})
			id++
		}
	}
	return roster
}

// EligibleSquares lists the dark squares of player's three home ranks,
// back rank first, left to right.
func EligibleSquares(player Player) []Square {
	var squares []Square
	for _, row := range player.HomeRows() {
		for col := 0; col < Size; col++ {
			if s := Sq(row, col); s.IsDark() {
				squares = append(squares, s)
			}
		}
	}
	return squares
}

// IsHomeSquare reports whether s is a dark square in player's home ranks.
func IsHomeSquare(player Player, s Square) bool {
	if !s.InBounds() || !s.IsDark() {
		return false
	}
	for _, row := range player.HomeRows() {
		if s.Row == row {
			return true
		}
	}
	return false
}
