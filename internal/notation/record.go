// Package notation converts between FEN piece-placement text, board state
// and the 64-square snapshot string.
package notation

import "strings"

// InitialPlacement is the placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// InitialFEN is the full record for the standard starting position.
const InitialFEN = InitialPlacement + " w KQkq - 0 1"

// Record holds the whitespace-separated fields of a notation string.
// Only Placement affects the board; the remaining fields are carried
// verbatim for callers that want them.
type Record struct {
	Placement      string
	ActiveColor    string
	Castling       string
	EnPassant      string
	HalfmoveClock  string
	FullmoveNumber string

	// Extra holds any tokens after the sixth field.
	Extra []string
}

// ParseRecord splits text into its notation fields. Missing fields are left
// empty; an empty or whitespace-only text yields a zero Record.
func ParseRecord(text string) Record {
	parts := strings.Fields(text)
	var rec Record
	fields := []*string{
		&rec.Placement,
		&rec.ActiveColor,
		&rec.Castling,
		&rec.EnPassant,
		&rec.HalfmoveClock,
		&rec.FullmoveNumber,
	}
	for i, part := range parts {
		if i < len(fields) {
			*fields[i] = part
			continue
		}
		rec.Extra = append(rec.Extra, part)
	}
	return rec
}

// NumFields returns how many of the six standard fields are present.
func (r Record) NumFields() int {
	n := 0
	for _, f := range []string{r.Placement, r.ActiveColor, r.Castling, r.EnPassant, r.HalfmoveClock, r.FullmoveNumber} {
		if f == "" {
			break
		}
		n++
	}
	return n
}

// WithDefaults fills every missing optional field with the value for a
// fresh game: white to move, no castling, no en passant target, clocks 0 and 1.
func (r Record) WithDefaults() Record {
	setDefault := func(f *string, v string) {
		if *f == "" {
			*f = v
		}
	}
	setDefault(&r.ActiveColor, "w")
	setDefault(&r.Castling, "-")
	setDefault(&r.EnPassant, "-")
	setDefault(&r.HalfmoveClock, "0")
	setDefault(&r.FullmoveNumber, "1")
	return r
}

// String joins the present fields back into a single notation string.
func (r Record) String() string {
	fields := []string{r.Placement, r.ActiveColor, r.Castling, r.EnPassant, r.HalfmoveClock, r.FullmoveNumber}
	return strings.Join(fields[:r.NumFields()], " ")
}
