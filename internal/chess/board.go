package chess

// Board is the 8x8 grid of cells plus the memory of the immediately
// preceding accepted move, which en-passant legality depends on.
type Board struct {
	// Squares[rank][col], rank index 0 is White's home rank.
	Squares [BoardSize][BoardSize]Cell

	// The last move accepted by the engine. The zero Move is a no-op
	// whose TwoStep is false, so en-passant checks before any move has
	// been played never fire.
	LastMove Move
}

// NewBoard creates a board in the initial position: white pawns across
// rank index 1, black pawns across rank index 6, all other squares empty.
func NewBoard() *Board {
	b := &Board{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[StartRank(White)][col] = WhitePawn
		b.Squares[StartRank(Black)][col] = BlackPawn
	}
	return b
}

// Get returns the cell at the given square. Off-board squares read as Empty.
func (b *Board) Get(sq Square) Cell {
	if !sq.InBoard() {
		return Empty
	}
	return b.Squares[sq.Rank][sq.Col]
}

// Set places a cell at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, cell Cell) {
	if sq.InBoard() {
		b.Squares[sq.Rank][sq.Col] = cell
	}
}

// Count returns the number of pawns of the given colour on the board.
func (b *Board) Count(colour Colour) int {
	pawn := PawnOf(colour)
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[rank][col] == pawn {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
