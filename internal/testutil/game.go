// Package testutil provides shared test utilities for the pawns-only-go
// project. These helpers reduce duplication across test files and keep
// position setup readable.
package testutil

import (
	"testing"

	"github.com/lgbarn/pawns-only-go/internal/chess"
	"github.com/lgbarn/pawns-only-go/internal/engine"
	"github.com/lgbarn/pawns-only-go/internal/parser"
)

// MustParseMove parses a move in long algebraic form, e.g. "e2e4".
// It calls t.Fatal if the text is not a well-formed move.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	action := parser.ParseAction(text)
	if action.Type != parser.MoveAction {
		t.Fatalf("failed to parse test move %q", text)
	}
	return action.Move
}

// MustPlayMoves plays the given moves from the initial position, colours
// alternating starting with White, and returns the resulting board.
// It calls t.Fatal if any move is rejected.
func MustPlayMoves(t *testing.T, moves ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	colour := chess.White
	for _, text := range moves {
		move := MustParseMove(t, text)
		if err := engine.ApplyMove(board, move, colour); err != nil {
			t.Fatalf("move %q rejected: %v", text, err)
		}
		colour = colour.Opposite()
	}
	return board
}

// BoardWith builds a board holding exactly the given cells, keyed by
// algebraic square, e.g. "e2". All other squares are empty and no last
// move is recorded. It calls t.Fatal on a malformed square.
func BoardWith(t *testing.T, cells map[string]chess.Cell) *chess.Board {
	t.Helper()
	board := &chess.Board{}
	for sq, cell := range cells {
		board.Set(MustParseSquare(t, sq), cell)
	}
	return board
}

// MustParseSquare parses an algebraic square such as "e2".
// It calls t.Fatal if the text is not a well-formed square.
func MustParseSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	if len(text) != 2 {
		t.Fatalf("failed to parse test square %q", text)
	}
	// Round-trip through the move grammar to share its validation.
	action := parser.ParseAction(text + text)
	if action.Type != parser.MoveAction {
		t.Fatalf("failed to parse test square %q", text)
	}
	return action.Move.From
}
