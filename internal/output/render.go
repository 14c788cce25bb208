// Package output formats board positions and results for the console.
package output

import (
	"strings"

	"github.com/lgbarn/pawns-only-go/internal/chess"
	"github.com/lgbarn/pawns-only-go/internal/engine"
)

const border = "  +---+---+---+---+---+---+---+---+\n"

// RenderBoard renders the board as a fixed-width ASCII grid, rank 8 at the
// top down to rank 1, with the file letters beneath.
func RenderBoard(board *chess.Board) string {
	var b strings.Builder
	b.WriteString(border)

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteString(" |")
		for col := 0; col < chess.BoardSize; col++ {
			b.WriteByte(' ')
			b.WriteByte(board.Squares[rank][col].Letter())
			b.WriteString(" |")
		}
		b.WriteByte('\n')
		b.WriteString(border)
	}

	b.WriteString("    a   b   c   d   e   f   g   h\n")
	return b.String()
}

// RenderOutcome returns the result line for a terminal outcome, or the
// empty string while the game is in progress.
func RenderOutcome(outcome engine.Outcome) string {
	switch outcome {
	case engine.WhiteWin:
		return "White Wins!"
	case engine.BlackWin:
		return "Black Wins!"
	case engine.Stalemate:
		return "Stalemate!"
	default:
		return ""
	}
}
