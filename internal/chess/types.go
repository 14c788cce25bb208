// Package chess provides the core types for a pawns-only chess game.
package chess

// Colour represents the colour of a pawn or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (the pawn advance direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Cell represents the contents of one board square. The only occupants in
// this variant are pawns, so a square is empty or holds a pawn of one colour.
type Cell int

const (
	Empty Cell = iota
	WhitePawn
	BlackPawn
)

// String returns the string representation of a cell.
func (c Cell) String() string {
	names := []string{"Empty", "WhitePawn", "BlackPawn"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Letter returns the single letter used when rendering a cell.
func (c Cell) Letter() byte {
	switch c {
	case WhitePawn:
		return 'W'
	case BlackPawn:
		return 'B'
	default:
		return ' '
	}
}

// Direction returns the rank direction the cell's occupant advances in:
// +1 for a white pawn, -1 for a black pawn, 0 for an empty square.
func (c Cell) Direction() int {
	switch c {
	case WhitePawn:
		return 1
	case BlackPawn:
		return -1
	default:
		return 0
	}
}

// Colour returns the colour of the occupant. The second result is false
// for an empty square.
func (c Cell) Colour() (Colour, bool) {
	switch c {
	case WhitePawn:
		return White, true
	case BlackPawn:
		return Black, true
	default:
		return Black, false
	}
}

// PawnOf returns the pawn cell of the given colour.
func PawnOf(colour Colour) Cell {
	if colour == White {
		return WhitePawn
	}
	return BlackPawn
}

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// StartRank returns the home rank index for a colour's pawns.
// White pawns start on rank index 1, black pawns on rank index 6.
func StartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}

// HasMoved reports whether a pawn standing on the given rank has left its
// home rank. Double-step eligibility is derived from the rank of residence
// rather than tracked per pawn; pawns of one colour are interchangeable.
func (c Cell) HasMoved(rank int) bool {
	colour, ok := c.Colour()
	if !ok {
		return false
	}
	return rank != StartRank(colour)
}

// Square is a board coordinate. Col 0 is file 'a', Rank 0 is rank '1'.
type Square struct {
	Col  int
	Rank int
}

// String returns the algebraic form of the square, e.g. "e2".
func (s Square) String() string {
	return string([]byte{byte('a' + s.Col), byte('1' + s.Rank)})
}

// InBoard reports whether both coordinates lie on the 8x8 board.
func (s Square) InBoard() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}
