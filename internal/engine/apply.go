package engine

import (
	"github.com/lgbarn/pawns-only-go/internal/chess"
	"github.com/lgbarn/pawns-only-go/internal/errors"
)

// ApplyMove applies a move to the board on behalf of the given colour.
// It returns errors.ErrWrongColour if no pawn of that colour stands on the
// source square, and errors.ErrIllegalMove if the move fails IsLegal.
// Legality is fully evaluated before the first write, so a rejected move
// leaves the board untouched.
func ApplyMove(board *chess.Board, move chess.Move, colour chess.Colour) error {
	occupant := board.Get(move.From)
	if occupant != chess.PawnOf(colour) {
		return &errors.MoveError{
			Err:      errors.ErrWrongColour,
			MoveText: move.String(),
			Colour:   colour.String(),
		}
	}

	if !IsLegal(board, move) {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			MoveText: move.String(),
			Colour:   colour.String(),
		}
	}

	board.Set(move.To, occupant)
	board.Set(move.From, chess.Empty)

	// An en-passant capture removes the pawn that double-stepped last
	// turn. It sits on the last move's destination square, one rank
	// behind the capturing pawn's own destination.
	if move.EnPassantShape() &&
		board.LastMove.TwoStep() &&
		board.LastMove.To.Col == move.To.Col {
		board.Set(board.LastMove.To, chess.Empty)
	}

	board.LastMove = move
	return nil
}
