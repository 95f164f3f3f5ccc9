package testutil

import (
	"strings"

	"github.com/lgbarn/fengate/internal/chess"
)

// EmptySnapshot is the snapshot string of a board with no pieces.
var EmptySnapshot = strings.Repeat("0", chess.NumSquares)

// Placements lists the pieces on b in board iteration order.
func Placements(b *chess.Board) []chess.Placement {
	var out []chess.Placement
	b.ForEachSquare(func(sq *chess.Square, x, y int) {
		if p := sq.Piece(); p != nil {
			out = append(out, chess.Placement{Kind: p.Kind, Owner: p.Owner, X: x, Y: y})
		}
	})
	return out
}

// BoardWith returns a board holding the given placements.
func BoardWith(placements ...chess.Placement) *chess.Board {
	b := chess.NewBoard()
	for _, p := range placements {
		if sq := b.Square(p.X, p.Y); sq != nil {
			sq.SetPiece(chess.NewPiece(p.Owner, p.Kind))
		}
	}
	return b
}

// Rows renders b as eight strings, rank 8 first, using notation letters
// and '.' for empty squares.
func Rows(b *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for y := chess.BoardSize - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < chess.BoardSize; x++ {
			if p := b.PieceAt(x, y); p != nil {
				sb.WriteByte(p.Code.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		rows[chess.BoardSize-1-y] = sb.String()
	}
	return rows
}
