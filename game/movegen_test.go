package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRulesCoverEveryVariant(t *testing.T) {
	require.Len(t, Variants, int(numVariants))
	for _, v := range Variants {
		r, ok := rulesFor(v)
		require.True(t, ok, "variant %s has no rules", v)
		require.NotNil(t, r.moves, "variant %s has no move function", v)
		require.NotNil(t, r.jump, "variant %s has no capture geometry", v)
	}
	_, ok := rulesFor(Variant(42))
	require.False(t, ok)
}

func TestNormalMoves(t *testing.T) {
	t.Run("red steps forward", func(t *testing.T) {
		p := piece(Red, Normal, 2, 3)
		got := Destinations(Position{Board: boardOf(p)}, p)
		requireSquares(t, []Square{Sq(3, 2), Sq(3, 4)}, got)
	})
	t.Run("blue steps forward", func(t *testing.T) {
		p := piece(Blue, Normal, 5, 2)
		got := Destinations(Position{Board: boardOf(p)}, p)
		requireSquares(t, []Square{Sq(4, 1), Sq(4, 3)}, got)
	})
	t.Run("edge column", func(t *testing.T) {
		p := piece(Red, Normal, 1, 0)
		got := Destinations(Position{Board: boardOf(p)}, p)
		requireSquares(t, []Square{Sq(2, 1)}, got)
	})
	t.Run("jump over opponent", func(t *testing.T) {
		p := piece(Red, Normal, 2, 3)
		b := boardOf(p, piece(Blue, Normal, 3, 4))
		requireSquares(t, []Square{Sq(3, 2), Sq(4, 5)}, Destinations(Position{Board: b}, p))
	})
	t.Run("no jump over friend", func(t *testing.T) {
		p := piece(Red, Normal, 2, 3)
		b := boardOf(p, piece(Red, Normal, 3, 4))
		requireSquares(t, []Square{Sq(3, 2)}, Destinations(Position{Board: b}, p))
	})
	t.Run("no jump onto occupied square", func(t *testing.T) {
		p := piece(Red, Normal, 2, 3)
		b := boardOf(p, piece(Blue, Normal, 3, 4), piece(Blue, Normal, 4, 5))
		requireSquares(t, []Square{Sq(3, 2)}, Destinations(Position{Board: b}, p))
	})
	t.Run("no jump off board", func(t *testing.T) {
		p := piece(Red, Normal, 5, 6)
		b := boardOf(p, piece(Blue, Normal, 6, 7))
		requireSquares(t, []Square{Sq(6, 5)}, Destinations(Position{Board: b}, p))
	})
	t.Run("blocked piece has no moves", func(t *testing.T) {
		p := piece(Red, Normal, 0, 1)
		b := boardOf(p, piece(Red, Normal, 1, 0), piece(Red, Normal, 1, 2))
		require.Empty(t, Destinations(Position{Board: b}, p))
	})
	t.Run("crowned moves both ways", func(t *testing.T) {
		p := crowned(piece(Red, Normal, 4, 3))
		b := boardOf(p, piece(Blue, Normal, 3, 2))
		got := Destinations(Position{Board: b}, p)
		requireSquares(t, []Square{Sq(5, 2), Sq(5, 4), Sq(3, 4), Sq(2, 1)}, got)
	})
	t.Run("unknown owner", func(t *testing.T) {
		p := piece(NoPlayer, Normal, 4, 3)
		require.Empty(t, Destinations(Position{Board: boardOf(p)}, p))
	})
}

func TestBagelEcho(t *testing.T) {
	bagel := piece(Red, Bagel, 2, 1)
	king := crowned(bagel)
	last := &Move{Player: Blue, From: Sq(4, 3), To: Sq(3, 4)}
	blue := piece(Blue, Normal, 3, 4)
	b := boardOf(bagel, blue)
	kb := boardOf(king, blue)

	t.Run("crowned bagel returns to the square the opponent left", func(t *testing.T) {
		got := Destinations(Position{Board: kb, Last: last}, king)
		requireSquares(t, []Square{Sq(3, 0), Sq(3, 2), Sq(1, 0), Sq(1, 2), Sq(4, 3)}, got)
	})
	t.Run("uncrowned bagel echoes one step only", func(t *testing.T) {
		got := Destinations(Position{Board: b, Last: last}, bagel)
		requireSquares(t, []Square{Sq(3, 0), Sq(3, 2)}, got)

		near := &Move{Player: Blue, From: Sq(3, 2), To: Sq(2, 3)}
		sq, ok := echoSquare(Position{Board: boardOf(bagel, piece(Blue, Normal, 2, 3)), Last: near}, bagel)
		require.True(t, ok)
		require.Equal(t, Sq(3, 2), sq)
	})
	t.Run("no echo without a previous move", func(t *testing.T) {
		_, ok := echoSquare(Position{Board: kb}, king)
		require.False(t, ok)
	})
	t.Run("no echo after own move", func(t *testing.T) {
		own := &Move{Player: Red, From: Sq(4, 3), To: Sq(3, 4)}
		got := Destinations(Position{Board: kb, Last: own}, king)
		require.NotContains(t, got, Sq(4, 3))
	})
	t.Run("no echo through a piece", func(t *testing.T) {
		blocked := kb.Put(piece(Red, Normal, 3, 2))
		got := Destinations(Position{Board: blocked, Last: last}, king)
		require.NotContains(t, got, Sq(4, 3))
	})
	t.Run("long range needs a crown", func(t *testing.T) {
		far := &Move{Player: Blue, From: Sq(5, 4), To: Sq(4, 5)}
		require.NotContains(t, Destinations(Position{Board: b, Last: far}, bagel), Sq(5, 4))
		require.Contains(t, Destinations(Position{Board: kb, Last: far}, king), Sq(5, 4))
	})
	t.Run("no echo backwards unless crowned", func(t *testing.T) {
		high := piece(Red, Bagel, 5, 2)
		back := &Move{Player: Blue, From: Sq(4, 1), To: Sq(3, 0)}
		pos := Position{Board: boardOf(high), Last: back}
		_, ok := echoSquare(pos, high)
		require.False(t, ok)

		up := crowned(high)
		sq, ok := echoSquare(Position{Board: boardOf(up), Last: back}, up)
		require.True(t, ok)
		require.Equal(t, Sq(4, 1), sq)
	})
	t.Run("no echo off the diagonal", func(t *testing.T) {
		off := &Move{Player: Blue, From: Sq(4, 1), To: Sq(3, 0)}
		got := Destinations(Position{Board: boardOf(king), Last: off}, king)
		require.NotContains(t, got, Sq(4, 1))
	})
}

func TestPancakeMoves(t *testing.T) {
	p := piece(Red, Pancake, 3, 3)
	b := boardOf(p, piece(Blue, Normal, 3, 4))
	got := Destinations(Position{Board: b}, p)
	requireSquares(t, []Square{Sq(4, 2), Sq(4, 4), Sq(3, 2), Sq(3, 5)}, got)

	t.Run("no lateral jump over friend", func(t *testing.T) {
		b := boardOf(p, piece(Red, Normal, 3, 4))
		got := Destinations(Position{Board: b}, p)
		require.NotContains(t, got, Sq(3, 5))
		require.Contains(t, got, Sq(3, 2))
	})
}

func TestUndefinedVariantsAreImmobile(t *testing.T) {
	for _, v := range []Variant{Bomb, Vinyl, FlyingDisk} {
		p := piece(Red, v, 3, 2)
		b := boardOf(p, piece(Blue, Normal, 4, 3))
		require.Empty(t, Destinations(Position{Board: b}, p), "%s should not move", v)
		require.Empty(t, Destinations(Position{Board: b}, crowned(p)), "crowned %s should not move", v)
		require.False(t, IsMobile(v))
	}
	for _, v := range []Variant{Normal, Bagel, Pancake} {
		require.True(t, IsMobile(v))
	}
}

func TestIsLegal(t *testing.T) {
	p := piece(Red, Normal, 2, 3)
	pos := Position{Board: boardOf(p, piece(Blue, Normal, 3, 4))}

	require.True(t, IsLegal(pos, p.Position, Sq(4, 5), p))
	require.True(t, IsLegal(pos, p.Position, Sq(3, 2), p))
	require.False(t, IsLegal(pos, p.Position, Sq(3, 4), p), "occupied")
	require.False(t, IsLegal(pos, p.Position, Sq(1, 2), p), "backwards")
	require.False(t, IsLegal(pos, p.Position, Sq(-1, 2), p), "off board")
	require.False(t, IsLegal(pos, Sq(2, 1), Sq(3, 2), p), "wrong origin")

	stale := p
	stale.ID = 9999
	require.False(t, IsLegal(pos, p.Position, Sq(3, 2), stale), "stale reference")
}
