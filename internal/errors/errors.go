// Package errors provides sentinel errors and error types for the
// pawns-only game engine. It defines the common failure conditions and a
// structured move error that preserves context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrParseFailure indicates an input line that is neither a move in
	// long algebraic form nor the exit token.
	ErrParseFailure = errors.New("invalid input")

	// ErrIllegalMove indicates a move that violates the pawn movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongColour indicates that no pawn of the moving colour stands
	// on the source square.
	ErrWrongColour = errors.New("no pawn of the moving colour at source square")

	// ErrSessionNotFound indicates a lookup for an unknown game session.
	ErrSessionNotFound = errors.New("game session not found")

	// ErrGameOver indicates a move submitted after the game has ended.
	ErrGameOver = errors.New("game is already over")
)

// MoveError wraps a rejected move with its context: the move text and the
// colour that attempted it. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move in long algebraic form, e.g. "e2e4"
	Colour   string // The colour that attempted the move
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
