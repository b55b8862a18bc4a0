package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCapture(t *testing.T) {
	red := piece(Red, Normal, 2, 3)
	blue := piece(Blue, Normal, 3, 4)

	t.Run("diagonal jump over opponent", func(t *testing.T) {
		victim, ok := ResolveCapture(boardOf(red, blue), red, red.Position, Sq(4, 5))
		require.True(t, ok)
		require.Equal(t, blue, victim)
	})
	t.Run("empty midpoint", func(t *testing.T) {
		_, ok := ResolveCapture(boardOf(red), red, red.Position, Sq(4, 5))
		require.False(t, ok)
	})
	t.Run("friendly midpoint", func(t *testing.T) {
		friend := piece(Red, Normal, 3, 4)
		_, ok := ResolveCapture(boardOf(red, friend), red, red.Position, Sq(4, 5))
		require.False(t, ok)
	})
	t.Run("single step never captures", func(t *testing.T) {
		_, ok := ResolveCapture(boardOf(red, blue), red, red.Position, Sq(3, 2))
		require.False(t, ok)
	})
	t.Run("lateral jump only for pancakes", func(t *testing.T) {
		side := piece(Blue, Normal, 2, 4)
		_, ok := ResolveCapture(boardOf(red, side), red, red.Position, Sq(2, 5))
		require.False(t, ok, "normal pieces have no lateral capture")

		pancake := piece(Red, Pancake, 2, 3)
		victim, ok := ResolveCapture(boardOf(pancake, side), pancake, pancake.Position, Sq(2, 5))
		require.True(t, ok)
		require.Equal(t, side.ID, victim.ID)
	})
	t.Run("unknown variant", func(t *testing.T) {
		odd := red
		odd.Variant = Variant(99)
		_, ok := ResolveCapture(boardOf(red, blue), odd, red.Position, Sq(4, 5))
		require.False(t, ok)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("capture removes the jumped piece", func(t *testing.T) {
		red := piece(Red, Normal, 2, 3)
		blue := piece(Blue, Normal, 3, 4)
		pos := Position{Board: boardOf(red, blue)}

		b, mv, ok := ApplyMove(pos, red, Sq(4, 5))
		require.True(t, ok)
		require.True(t, mv.IsCapture())
		require.Equal(t, blue.ID, mv.Captured.ID)
		require.True(t, b.IsEmpty(Sq(2, 3)))
		require.True(t, b.IsEmpty(Sq(3, 4)))
		moved, ok := b.At(Sq(4, 5))
		require.True(t, ok)
		require.Equal(t, red.ID, moved.ID)
		require.Equal(t, Sq(4, 5), moved.Position)

		// The input board is untouched.
		require.False(t, pos.Board.IsEmpty(Sq(2, 3)))
		require.False(t, pos.Board.IsEmpty(Sq(3, 4)))
	})
	t.Run("crowning on the far rank", func(t *testing.T) {
		red := piece(Red, Normal, 6, 1)
		b, mv, ok := ApplyMove(Position{Board: boardOf(red)}, red, Sq(7, 2))
		require.True(t, ok)
		require.True(t, mv.Crowned)
		moved, ok := b.At(Sq(7, 2))
		require.True(t, ok)
		require.True(t, moved.Crowned)

		blue := piece(Blue, Bagel, 1, 2)
		b, mv, ok = ApplyMove(Position{Board: boardOf(blue)}, blue, Sq(0, 1))
		require.True(t, ok)
		require.True(t, mv.Crowned)
		moved, _ = b.At(Sq(0, 1))
		require.True(t, moved.Crowned)
	})
	t.Run("crowned pieces stay crowned", func(t *testing.T) {
		king := crowned(piece(Red, Normal, 7, 2))
		b, mv, ok := ApplyMove(Position{Board: boardOf(king)}, king, Sq(6, 3))
		require.True(t, ok)
		require.False(t, mv.Crowned, "no second crowning")
		moved, _ := b.At(Sq(6, 3))
		require.True(t, moved.Crowned)
	})
	t.Run("no crowning short of the far rank", func(t *testing.T) {
		red := piece(Red, Pancake, 5, 2)
		b, mv, ok := ApplyMove(Position{Board: boardOf(red)}, red, Sq(6, 3))
		require.True(t, ok)
		require.False(t, mv.Crowned)
		moved, _ := b.At(Sq(6, 3))
		require.False(t, moved.Crowned)
	})
}

func TestApplyMoveRefusesImpossibleDestinations(t *testing.T) {
	red := piece(Red, Normal, 7, 6)
	blue := piece(Blue, Normal, 6, 5)
	pos := Position{Board: boardOf(red, blue)}
	before := pos.Board.String()

	for r := -1; r <= Size; r++ {
		for c := -1; c <= Size; c++ {
			to := Sq(r, c)
			var (
				b  Board
				mv Move
				ok bool
			)
			require.NotPanics(t, func() { b, mv, ok = ApplyMove(pos, red, to) }, "%s -> %s", red, to)
			if !pos.Board.IsEmpty(to) {
				require.False(t, ok, "%s -> %s", red, to)
				require.Equal(t, pos.Board, b, "%s -> %s changed the board", red, to)
				require.Nil(t, mv.Captured)
				continue
			}
			require.True(t, ok, "%s -> %s", red, to)
			require.Len(t, b.Pieces(), len(pos.Board.Pieces())-len(capturedOf(mv)), "%s -> %s", red, to)
		}
	}
	require.Equal(t, before, pos.Board.String())

	t.Run("occupied destination keeps both pieces", func(t *testing.T) {
		mover := piece(Red, Normal, 2, 3)
		sitter := piece(Blue, Normal, 3, 4)
		start := boardOf(mover, sitter)
		b, _, ok := ApplyMove(Position{Board: start}, mover, sitter.Position)
		require.False(t, ok)
		require.Len(t, b.Pieces(), 2)
		on, _ := b.At(sitter.Position)
		require.Equal(t, sitter.ID, on.ID)
	})
	t.Run("piece not at its recorded square", func(t *testing.T) {
		ghost := piece(Red, Normal, 2, 1)
		_, _, ok := ApplyMove(Position{Board: boardOf(blue)}, ghost, Sq(3, 2))
		require.False(t, ok)
	})
}

func capturedOf(mv Move) []Piece {
	if mv.Captured == nil {
		return nil
	}
	return []Piece{*mv.Captured}
}

func TestPutIgnoresOffBoardPieces(t *testing.T) {
	var b Board
	require.NotPanics(t, func() { b = b.Put(piece(Red, Normal, 8, 7)) })
	require.NotPanics(t, func() { b = b.Put(piece(Red, Normal, -1, 0)) })
	require.Empty(t, b.Pieces())
}

func TestCanCrown(t *testing.T) {
	require.True(t, CanCrown(Normal))
	require.True(t, CanCrown(Bagel))
	require.True(t, CanCrown(Pancake))
	require.False(t, CanCrown(Bomb))
	require.False(t, CanCrown(Variant(-3)))
}
