package notation

import (
	"fmt"
	"strconv"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/fengate/internal/chess"
	"github.com/lgbarn/fengate/internal/errors"
)

const placementField = "placement"

// Validate reports every problem Decode would silently tolerate in text.
// The returned errors are *errors.ParseError values wrapping
// errors.ErrInvalidFEN. A nil result means text is well formed.
func Validate(text string) []error {
	rec := ParseRecord(text)
	if rec.Placement == "" {
		return []error{&errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    placementField,
			Expected: "a placement field",
		}}
	}

	_, issues := scanPlacements(rec.Placement)
	issues = append(issues, validateOptionalFields(rec)...)
	return issues
}

// CheckStandard cross-checks text against a full FEN decoder. Missing
// optional fields are filled with WithDefaults before checking, so a bare
// placement field is accepted when its ranks are valid.
func CheckStandard(text string) error {
	rec := ParseRecord(text)
	if rec.Placement == "" {
		return errors.Wrap(errors.ErrInvalidFEN, "empty notation")
	}
	if _, err := nchess.FEN(rec.WithDefaults().String()); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return nil
}

// ValidateSnapshot checks that s is a full snapshot made of owner digits.
// Restore accepts anything; this reports what it would skip or clear.
func ValidateSnapshot(s string) error {
	if len(s) != chess.NumSquares {
		return fmt.Errorf("snapshot has %d characters, want %d: %w", len(s), chess.NumSquares, errors.ErrInvalidSnapshot)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || int(s[i]-'0') > chess.NumOwners {
			return fmt.Errorf("snapshot index %d: %q is not an owner digit: %w", i, s[i], errors.ErrInvalidSnapshot)
		}
	}
	return nil
}

func validateOptionalFields(rec Record) []error {
	var issues []error

	if rec.ActiveColor != "" && rec.ActiveColor != "w" && rec.ActiveColor != "b" {
		issues = append(issues, fieldError("active color", "w or b", rec.ActiveColor))
	}

	if rec.Castling != "" && rec.Castling != "-" {
		for i, c := range rec.Castling {
			if !strings.ContainsRune("KQkqABCDEFGHabcdefgh", c) {
				err := fieldError("castling", "KQkq, a file letter or -", string(c))
				err.Column = i + 1
				issues = append(issues, err)
			}
		}
	}

	if rec.EnPassant != "" && rec.EnPassant != "-" {
		sq, ok := chess.ParseCoord(rec.EnPassant)
		if !ok || (sq.Y != 2 && sq.Y != 5) {
			issues = append(issues, fieldError("en passant", "a square on rank 3 or 6, or -", rec.EnPassant))
		}
	}

	if rec.HalfmoveClock != "" {
		if n, err := strconv.Atoi(rec.HalfmoveClock); err != nil || n < 0 {
			issues = append(issues, fieldError("halfmove clock", "a non-negative number", rec.HalfmoveClock))
		}
	}

	if rec.FullmoveNumber != "" {
		if n, err := strconv.Atoi(rec.FullmoveNumber); err != nil || n < 1 {
			issues = append(issues, fieldError("fullmove number", "a positive number", rec.FullmoveNumber))
		}
	}

	if len(rec.Extra) > 0 {
		issues = append(issues, fieldError("record", "at most 6 fields", strconv.Itoa(6+len(rec.Extra))))
	}

	return issues
}

func fieldError(field, expected, got string) *errors.ParseError {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    field,
		Expected: expected,
		Got:      strconv.Quote(got),
	}
}

func rankCountError(n int) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    placementField,
		Expected: fmt.Sprintf("%d ranks", chess.BoardSize),
		Got:      strconv.Itoa(n),
	}
}

func charError(rank, offset int, c byte, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    placementField,
		Segment:  rank + 1,
		Column:   offset + 1,
		Expected: expected,
		Got:      strconv.QuoteRune(rune(c)),
	}
}

func trailingError(rank, offset int, rest string) error {
	return &errors.ParseError{
		Err:     errors.ErrInvalidFEN,
		Field:   placementField,
		Segment: rank + 1,
		Column:  offset + 1,
		Got:     "trailing " + strconv.Quote(rest),
	}
}

func rankWidthError(rank, width int) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    placementField,
		Segment:  rank + 1,
		Expected: fmt.Sprintf("%d columns", chess.BoardSize),
		Got:      strconv.Itoa(width),
	}
}
