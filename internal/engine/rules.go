// Package engine provides move validation, move application and game
// termination for pawns-only chess.
package engine

import (
	"github.com/lgbarn/pawns-only-go/internal/chess"
)

// IsLegal reports whether the move is legal on the given board. It never
// mutates the board. All rules are conjunctive except the final
// capture-or-en-passant disjunction, so the check order only affects how
// early an illegal move is rejected, not the result.
func IsLegal(board *chess.Board, move chess.Move) bool {
	if !move.InArea() || !move.InBoard() {
		return false
	}

	occupantFrom := board.Get(move.From)
	occupantTo := board.Get(move.To)

	if occupantFrom == chess.Empty {
		return false
	}

	// A pawn may only advance toward its own promotion edge.
	if occupantFrom.Direction() != move.VerticalSign() {
		return false
	}

	// The double step is only available from the home rank.
	if move.TwoStep() && occupantFrom.HasMoved(move.From.Rank) {
		return false
	}

	if move.Straight() {
		// Pawns do not capture straight ahead.
		if move.OneStep() {
			return occupantTo == chess.Empty
		}
		between := chess.Square{Col: move.From.Col, Rank: move.From.Rank + move.VerticalSign()}
		return occupantTo == chess.Empty && board.Get(between) == chess.Empty
	}

	if move.Diagonal() && move.OneStep() {
		if occupantTo.Direction() == -occupantFrom.Direction() {
			return true
		}
		return board.LastMove.TwoStep() &&
			board.LastMove.To.Col == move.To.Col &&
			move.EnPassantShape()
	}

	// Unreachable given the shape gate above, kept as an explicit default.
	return false
}
