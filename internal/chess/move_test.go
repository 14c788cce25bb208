package chess

import "testing"

func sq(col, rank int) Square {
	return Square{Col: col, Rank: rank}
}

func TestMoveString(t *testing.T) {
	m := NewMove(sq(4, 1), sq(4, 3))
	if got := m.String(); got != "e2e4" {
		t.Errorf("Move.String() = %q, want %q", got, "e2e4")
	}
}

func TestMoveShape(t *testing.T) {
	tests := []struct {
		name     string
		move     Move
		straight bool
		oneStep  bool
		twoStep  bool
		diagonal bool
		inArea   bool
	}{
		{"single advance", NewMove(sq(4, 1), sq(4, 2)), true, true, false, false, true},
		{"double advance", NewMove(sq(4, 1), sq(4, 3)), true, false, true, false, true},
		{"diagonal left", NewMove(sq(4, 3), sq(3, 4)), false, true, false, true, true},
		{"diagonal right", NewMove(sq(4, 3), sq(5, 4)), false, true, false, true, true},
		{"knight jump", NewMove(sq(4, 1), sq(5, 3)), false, false, true, true, false},
		{"sideways", NewMove(sq(4, 3), sq(5, 3)), false, false, false, true, false},
		{"triple advance", NewMove(sq(4, 1), sq(4, 4)), true, false, false, false, false},
		{"diagonal two ranks", NewMove(sq(4, 1), sq(3, 3)), false, false, true, true, false},
		{"no move", NewMove(sq(4, 3), sq(4, 3)), true, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.Straight(); got != tt.straight {
				t.Errorf("Straight() = %v, want %v", got, tt.straight)
			}
			if got := tt.move.OneStep(); got != tt.oneStep {
				t.Errorf("OneStep() = %v, want %v", got, tt.oneStep)
			}
			if got := tt.move.TwoStep(); got != tt.twoStep {
				t.Errorf("TwoStep() = %v, want %v", got, tt.twoStep)
			}
			if got := tt.move.Diagonal(); got != tt.diagonal {
				t.Errorf("Diagonal() = %v, want %v", got, tt.diagonal)
			}
			if got := tt.move.InArea(); got != tt.inArea {
				t.Errorf("InArea() = %v, want %v", got, tt.inArea)
			}
		})
	}
}

func TestMoveDirection(t *testing.T) {
	up := NewMove(sq(4, 1), sq(4, 2))
	if !up.Whiteward() || up.Blackward() {
		t.Errorf("e2e3: Whiteward() = %v, Blackward() = %v, want true/false", up.Whiteward(), up.Blackward())
	}
	if got := up.VerticalSign(); got != 1 {
		t.Errorf("e2e3: VerticalSign() = %d, want 1", got)
	}

	down := NewMove(sq(4, 6), sq(4, 5))
	if down.Whiteward() || !down.Blackward() {
		t.Errorf("e7e6: Whiteward() = %v, Blackward() = %v, want false/true", down.Whiteward(), down.Blackward())
	}
	if got := down.VerticalSign(); got != -1 {
		t.Errorf("e7e6: VerticalSign() = %d, want -1", got)
	}
}

func TestMoveInBoard(t *testing.T) {
	if !NewMove(sq(0, 0), sq(0, 1)).InBoard() {
		t.Error("a1a2: InBoard() = false, want true")
	}
	if NewMove(sq(0, 7), sq(0, 8)).InBoard() {
		t.Error("move off the top edge: InBoard() = true, want false")
	}
	if NewMove(sq(-1, 3), sq(0, 4)).InBoard() {
		t.Error("move from off the left edge: InBoard() = true, want false")
	}
}

func TestEnPassantShape(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want bool
	}{
		{"white diagonal rank 5 to 6", NewMove(sq(3, 4), sq(4, 5)), true},
		{"black diagonal rank 4 to 3", NewMove(sq(4, 3), sq(3, 2)), true},
		{"white diagonal wrong ranks", NewMove(sq(3, 3), sq(4, 4)), false},
		{"black diagonal wrong ranks", NewMove(sq(4, 4), sq(3, 3)), false},
		{"straight on the pattern ranks", NewMove(sq(3, 4), sq(3, 5)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.EnPassantShape(); got != tt.want {
				t.Errorf("EnPassantShape() = %v, want %v", got, tt.want)
			}
		})
	}
}
