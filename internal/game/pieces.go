package game

import (
	"path"
	"strings"

	"github.com/lgbarn/fengate/internal/chess"
)

// PieceSet creates pieces with sprite names such as "w_knight.png".
// It implements notation.PieceFactory.
type PieceSet struct {
	// Dir is prepended to every sprite name when non-empty.
	Dir string
}

// NewPieceSet creates a piece set whose sprites live under dir.
func NewPieceSet(dir string) *PieceSet {
	return &PieceSet{Dir: dir}
}

// NewPiece creates a piece for owner with its sprite name filled in.
func (s *PieceSet) NewPiece(owner chess.Owner, kind chess.PieceKind) *chess.Piece {
	p := chess.NewPiece(owner, kind)
	p.Sprite = s.SpriteName(owner, kind)
	return p
}

// SpriteName returns the sprite file for a piece.
func (s *PieceSet) SpriteName(owner chess.Owner, kind chess.PieceKind) string {
	prefix := "w_"
	if owner == chess.Second {
		prefix = "b_"
	}
	name := prefix + strings.ToLower(kind.String()) + ".png"
	if s.Dir == "" {
		return name
	}
	return path.Join(s.Dir, name)
}
