package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

var nextTestID PieceID = 100

func piece(owner Player, v Variant, row, col int) Piece {
	nextTestID++
	return Piece{ID: nextTestID, Variant: v, Owner: owner, Position: Sq(row, col)}
}

func crowned(p Piece) Piece {
	p.Crowned = true
	return p
}

func boardOf(pieces ...Piece) Board {
	var b Board
	for _, p := range pieces {
		b = b.Put(p)
	}
	return b
}

// playState is a Play phase state around b with red to move.
func playState(b Board, remaining [2]int) *GameState {
	return &GameState{
		Phase:     PlayPhase,
		Active:    Red,
		Board:     b,
		Remaining: remaining,
		Started:   true,
		Winner:    NoPlayer,
	}
}

func sortSquares(squares []Square) []Square {
	out := append([]Square(nil), squares...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func requireSquares(t *testing.T, want, got []Square, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, sortSquares(want), sortSquares(got), msgAndArgs...)
}
