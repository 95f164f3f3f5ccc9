package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				if got := b.PieceAt(x, y); got != nil {
					t.Errorf("PieceAt(%d, %d) = %v; want nil", x, y, got)
				}
			}
		}
		if got := b.Count(); got != 0 {
			t.Errorf("Count() = %d; want 0", got)
		}
	})

	t.Run("out of range squares are nil", func(t *testing.T) {
		for _, c := range []Coord{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}} {
			if b.Square(c.X, c.Y) != nil {
				t.Errorf("Square(%d, %d) != nil", c.X, c.Y)
			}
			if b.PieceAt(c.X, c.Y) != nil {
				t.Errorf("PieceAt(%d, %d) != nil", c.X, c.Y)
			}
		}
	})
}

func TestSquareSetClear(t *testing.T) {
	b := NewBoard()
	sq := b.Square(4, 3)
	p := NewPiece(First, Knight)

	sq.SetPiece(p)
	if got := b.PieceAt(4, 3); got != p {
		t.Errorf("PieceAt(4, 3) = %v; want %v", got, p)
	}
	if sq.Empty() {
		t.Error("Empty() = true after SetPiece")
	}

	sq.SetPiece(nil)
	if !sq.Empty() {
		t.Error("Empty() = false after SetPiece(nil)")
	}

	sq.SetPiece(p)
	sq.Clear()
	if got := b.PieceAt(4, 3); got != nil {
		t.Errorf("PieceAt(4, 3) after Clear = %v; want nil", got)
	}
}

func TestClearAll(t *testing.T) {
	b := NewBoard()
	b.Square(0, 0).SetPiece(NewPiece(First, Rook))
	b.Square(7, 7).SetPiece(NewPiece(Second, Rook))
	b.Square(3, 4).SetPiece(NewPiece(Second, Pawn))

	if got := b.Count(); got != 3 {
		t.Fatalf("Count() = %d; want 3", got)
	}
	if got := b.CountOwned(Second); got != 2 {
		t.Errorf("CountOwned(Second) = %d; want 2", got)
	}

	b.ClearAll()
	if got := b.Count(); got != 0 {
		t.Errorf("Count() after ClearAll = %d; want 0", got)
	}
}

func TestForEachSquareOrder(t *testing.T) {
	b := NewBoard()
	i := 0
	b.ForEachSquare(func(sq *Square, x, y int) {
		if want := SquareIndex(x, y); want != i {
			t.Errorf("visit %d at (%d, %d); want index %d", i, x, y, want)
		}
		if sq != b.Square(x, y) {
			t.Errorf("square at visit %d is not Square(%d, %d)", i, x, y)
		}
		i++
	})
	if i != NumSquares {
		t.Errorf("visited %d squares; want %d", i, NumSquares)
	}
}

func TestCoord(t *testing.T) {
	tests := []struct {
		in     string
		want   Coord
		wantOK bool
	}{
		{"a1", Coord{0, 0}, true},
		{"h8", Coord{7, 7}, true},
		{"e4", Coord{4, 3}, true},
		{"E2", Coord{4, 1}, true},
		{"i1", Coord{}, false},
		{"a9", Coord{}, false},
		{"a", Coord{}, false},
		{"a10", Coord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCoord(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseCoord(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
			if ok && got.String() != string([]byte{tt.in[0] | 0x20, tt.in[1]}) {
				t.Errorf("String() = %q", got.String())
			}
		})
	}

	if got := (Coord{X: 9, Y: 0}).String(); got != "-" {
		t.Errorf("String() out of range = %q; want -", got)
	}
}
