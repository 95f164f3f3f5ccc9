package testutil

import (
	"testing"

	"github.com/lgbarn/fengate/internal/chess"
)

func TestBoardWithPlacements(t *testing.T) {
	want := []chess.Placement{
		{Kind: chess.Rook, Owner: chess.First, X: 0, Y: 0},
		{Kind: chess.Pawn, Owner: chess.Second, X: 3, Y: 6},
	}
	b := BoardWith(want...)
	AssertEqual(t, Placements(b), want)
	AssertPieceAt(t, b, 0, 0, chess.First, chess.Rook)
	AssertPieceAt(t, b, 1, 0, chess.First, chess.None)
}

func TestBoardWithIgnoresOutOfRange(t *testing.T) {
	b := BoardWith(chess.Placement{Kind: chess.King, Owner: chess.First, X: 8, Y: 0})
	if got := b.Count(); got != 0 {
		t.Errorf("Count() = %d; want 0", got)
	}
}

func TestRows(t *testing.T) {
	b := BoardWith(
		chess.Placement{Kind: chess.King, Owner: chess.First, X: 4, Y: 0},
		chess.Placement{Kind: chess.Queen, Owner: chess.Second, X: 3, Y: 7},
	)
	want := []string{
		"...q....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	}
	AssertEqual(t, Rows(b), want)
}

func TestEmptySnapshot(t *testing.T) {
	if len(EmptySnapshot) != chess.NumSquares {
		t.Errorf("len(EmptySnapshot) = %d; want %d", len(EmptySnapshot), chess.NumSquares)
	}
	AssertContains(t, EmptySnapshot, "00000000")
}
