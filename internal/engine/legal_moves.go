package engine

import "github.com/lgbarn/pawns-only-go/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
// For every pawn of the colour it tests the squares one step away in any
// direction plus the double-step square; IsLegal rejects the shapes and
// directions a pawn cannot use. No general move generator is involved.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	pawn := chess.PawnOf(colour)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[rank][col] != pawn {
				continue
			}
			if hasLegalMovesFrom(board, chess.Square{Col: col, Rank: rank}, colour) {
				return true
			}
		}
	}
	return false
}

// hasLegalMovesFrom checks the bounded destination neighbourhood of one pawn.
func hasLegalMovesFrom(board *chess.Board, from chess.Square, colour chess.Colour) bool {
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			to := chess.Square{Col: from.Col + dc, Rank: from.Rank + dr}
			if to.InBoard() && IsLegal(board, chess.NewMove(from, to)) {
				return true
			}
		}
	}

	double := chess.Square{Col: from.Col, Rank: from.Rank + 2*chess.ColourOffset(colour)}
	return double.InBoard() && IsLegal(board, chess.NewMove(from, double))
}
