package engine

import "github.com/lgbarn/pawns-only-go/internal/chess"

// Outcome is the game state derived from a board position.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWin
	BlackWin
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	names := []string{"InProgress", "WhiteWin", "BlackWin", "Stalemate"}
	if int(o) < len(names) {
		return names[o]
	}
	return "Unknown"
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Win returns the winning outcome for a colour.
func Win(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWin
	}
	return BlackWin
}

// Classify determines the game state of a board position. The checks run
// in a fixed order: a pawn on the far rank wins for its own side before
// material is counted, an empty side loses before mobility is tested, and
// White's mobility is tested before Black's. A position meeting several
// conditions at once resolves to the first matching check.
func Classify(board *chess.Board) Outcome {
	for col := 0; col < chess.BoardSize; col++ {
		if board.Squares[0][col] == chess.BlackPawn {
			return BlackWin
		}
	}
	for col := 0; col < chess.BoardSize; col++ {
		if board.Squares[chess.BoardSize-1][col] == chess.WhitePawn {
			return WhiteWin
		}
	}

	if board.Count(chess.Black) == 0 {
		return WhiteWin
	}
	if board.Count(chess.White) == 0 {
		return BlackWin
	}

	if !HasLegalMoves(board, chess.White) {
		return Stalemate
	}
	if !HasLegalMoves(board, chess.Black) {
		return Stalemate
	}

	return InProgress
}
