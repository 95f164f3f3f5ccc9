// Package rules decides whether a player may act on a piece.
//
// Only ownership is checked. Movement geometry, captures, check and the
// other rules of chess are not enforced here.
package rules

import (
	"github.com/lgbarn/fengate/internal/chess"
)

// CanPickUp reports whether the player numbered activePlayer (0 or 1) may
// begin moving piece: the piece's owner partition must match the player's.
// A nil piece cannot be picked up.
func CanPickUp(piece *chess.Piece, activePlayer int) bool {
	if piece == nil {
		return false
	}
	return piece.Code.Partition() == chess.PlayerPartition(activePlayer)
}

// CanMoveTo reports whether piece may move from src to dst. Any destination
// is accepted once the piece has been picked up.
func CanMoveTo(piece *chess.Piece, src, dst *chess.Square) bool {
	return true
}
