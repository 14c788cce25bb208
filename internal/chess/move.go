package chess

// Move is a candidate transition between two squares. All of its
// classification methods are pure functions of the two coordinates; none of
// them consult board occupancy.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the long algebraic form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// InBoard reports whether both endpoints lie on the board.
func (m Move) InBoard() bool {
	return m.From.InBoard() && m.To.InBoard()
}

// Straight reports whether the move stays on one file.
func (m Move) Straight() bool {
	return m.From.Col == m.To.Col
}

// RankDelta returns the absolute rank distance of the move.
func (m Move) RankDelta() int {
	d := m.To.Rank - m.From.Rank
	if d < 0 {
		return -d
	}
	return d
}

// OneStep reports whether the move advances exactly one rank.
func (m Move) OneStep() bool {
	return m.RankDelta() == 1
}

// TwoStep reports whether the move advances exactly two ranks.
func (m Move) TwoStep() bool {
	return m.RankDelta() == 2
}

// DiagonalLeft reports whether the destination file is one to the left.
func (m Move) DiagonalLeft() bool {
	return m.To.Col-m.From.Col == -1
}

// DiagonalRight reports whether the destination file is one to the right.
func (m Move) DiagonalRight() bool {
	return m.To.Col-m.From.Col == 1
}

// Diagonal reports whether the destination file is one off in either direction.
func (m Move) Diagonal() bool {
	return m.DiagonalLeft() || m.DiagonalRight()
}

// Whiteward reports whether the move heads toward White's promotion edge.
func (m Move) Whiteward() bool {
	return m.To.Rank > m.From.Rank
}

// Blackward reports whether the move heads toward Black's promotion edge.
func (m Move) Blackward() bool {
	return m.To.Rank < m.From.Rank
}

// VerticalSign returns +1 for a whiteward move, -1 otherwise.
func (m Move) VerticalSign() int {
	if m.Whiteward() {
		return 1
	}
	return -1
}

// InArea reports whether the move has a shape some legal pawn move could
// have: a one-step diagonal, a one-step straight advance, or a two-step
// straight advance. Exactly one of the three holds for a true result, so
// knight jumps and sideways slides never pass.
func (m Move) InArea() bool {
	diagonalStep := m.Diagonal() && m.OneStep()
	straightStep := m.Straight() && m.OneStep()
	doubleStep := m.Straight() && m.TwoStep()
	return diagonalStep || straightStep || doubleStep
}

// EnPassantShape reports whether the move matches the en-passant capture
// pattern for its direction: a diagonal step from rank index 4 to 5 for
// White, or from rank index 3 to 2 for Black.
func (m Move) EnPassantShape() bool {
	if m.Straight() {
		return false
	}
	if m.Blackward() {
		return m.From.Rank == 3 && m.To.Rank == 2
	}
	return m.From.Rank == 4 && m.To.Rank == 5
}
