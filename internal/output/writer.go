// Package output writes boards as text diagrams or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fengate/internal/chess"
	"github.com/lgbarn/fengate/internal/config"
	"github.com/lgbarn/fengate/internal/notation"
)

// BoardWriter is the interface for writing boards to output.
type BoardWriter interface {
	// WriteBoard writes a board and the record it was decoded from.
	WriteBoard(b *chess.Board, rec notation.Record) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(cfg *config.OutputConfig) BoardWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriter(cfg.Writer)
	}
	return NewDiagramWriter(cfg.Writer, cfg)
}

// DiagramWriter writes an 8x8 text diagram, rank 8 at the top.
type DiagramWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer, cfg *config.OutputConfig) *DiagramWriter {
	return &DiagramWriter{w: w, cfg: cfg}
}

// WriteBoard writes b as a diagram, followed by the snapshot when enabled.
func (dw *DiagramWriter) WriteBoard(b *chess.Board, rec notation.Record) error {
	_, err := io.WriteString(dw.w, Diagram(b, dw.cfg.ShowCoordinates))
	if err != nil {
		return err
	}
	if dw.cfg.ShowSnapshot {
		_, err = fmt.Fprintf(dw.w, "snapshot: %s\n", notation.Encode(b))
	}
	return err
}

// Diagram renders b with notation letters and '.' for empty squares.
func Diagram(b *chess.Board, coordinates bool) string {
	var sb strings.Builder
	for y := chess.BoardSize - 1; y >= 0; y-- {
		if coordinates {
			sb.WriteByte(byte(chess.RankBase + y))
			sb.WriteByte(' ')
		}
		for x := 0; x < chess.BoardSize; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if p := b.PieceAt(x, y); p != nil {
				sb.WriteByte(p.Code.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	Snapshot       string      `json:"snapshot"`
	Pieces         []JSONPiece `json:"pieces"`
	Placement      string      `json:"placement,omitempty"`
	ActiveColor    string      `json:"activeColor,omitempty"`
	Castling       string      `json:"castling,omitempty"`
	EnPassant      string      `json:"enPassant,omitempty"`
	HalfmoveClock  string      `json:"halfmoveClock,omitempty"`
	FullmoveNumber string      `json:"fullmoveNumber,omitempty"`
}

// JSONPiece represents one occupied square in JSON format.
type JSONPiece struct {
	Square string `json:"square"`
	Owner  string `json:"owner"`
	Kind   string `json:"kind"`
	Code   int    `json:"code"`
	Sprite string `json:"sprite,omitempty"`
}

// BoardToJSON converts a board and its record to JSON form.
func BoardToJSON(b *chess.Board, rec notation.Record) *JSONBoard {
	jb := &JSONBoard{
		Snapshot:       notation.Encode(b),
		Pieces:         []JSONPiece{},
		Placement:      rec.Placement,
		ActiveColor:    rec.ActiveColor,
		Castling:       rec.Castling,
		EnPassant:      rec.EnPassant,
		HalfmoveClock:  rec.HalfmoveClock,
		FullmoveNumber: rec.FullmoveNumber,
	}
	b.ForEachSquare(func(sq *chess.Square, x, y int) {
		p := sq.Piece()
		if p == nil {
			return
		}
		jb.Pieces = append(jb.Pieces, JSONPiece{
			Square: chess.Coord{X: x, Y: y}.String(),
			Owner:  p.Owner.String(),
			Kind:   p.Kind.String(),
			Code:   int(p.Code),
			Sprite: p.Sprite,
		})
	})
	return jb
}

// JSONWriter writes boards as indented JSON documents.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// WriteBoard writes b as one JSON document.
func (jw *JSONWriter) WriteBoard(b *chess.Board, rec notation.Record) error {
	return jw.enc.Encode(BoardToJSON(b, rec))
}
