// Package errors provides sentinel errors and error types for fengate.
// Core codec and gate operations never fail; these errors are produced by
// the diagnostic, host and CLI layers so callers can inspect them with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates malformed board notation.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSnapshot indicates a malformed 64-square snapshot string.
	ErrInvalidSnapshot = errors.New("invalid snapshot string")

	// ErrIllegalMove indicates a move the host refused.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotYourPiece indicates a pickup attempt on the other player's piece.
	ErrNotYourPiece = errors.New("piece belongs to the other player")

	// ErrEmptySquare indicates a pickup attempt on an empty square.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrOutOfBounds indicates a square outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// MoveError wraps a refused move with the squares and player involved.
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square in algebraic notation
	To     string // Destination square (empty for a pickup check)
	Player int    // Active player number at the time of the attempt
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("player %d", e.Player))

	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	} else if e.From != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError describes one problem found in board notation.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Notation field name, e.g. "placement" or "active color"
	Segment  int    // 1-based '/'-separated rank segment (0 if not applicable)
	Column   int    // 1-based character offset within the segment or field
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Segment > 0 {
			loc += fmt.Sprintf(" segment %d", e.Segment)
		}
		if e.Column > 0 {
			loc += fmt.Sprintf(" column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
