package chess

import "testing"

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	for col := 0; col < BoardSize; col++ {
		if got := board.Get(sq(col, 1)); got != WhitePawn {
			t.Errorf("initial board %s = %v, want WhitePawn", sq(col, 1), got)
		}
		if got := board.Get(sq(col, 6)); got != BlackPawn {
			t.Errorf("initial board %s = %v, want BlackPawn", sq(col, 6), got)
		}
	}

	for _, rank := range []int{0, 2, 3, 4, 5, 7} {
		for col := 0; col < BoardSize; col++ {
			if got := board.Get(sq(col, rank)); got != Empty {
				t.Errorf("initial board %s = %v, want Empty", sq(col, rank), got)
			}
		}
	}
}

func TestBoardLastMoveInitiallyHarmless(t *testing.T) {
	board := NewBoard()
	if board.LastMove.TwoStep() {
		t.Error("fresh board LastMove.TwoStep() = true, want false")
	}
}

func TestBoardGetSetOffBoard(t *testing.T) {
	board := NewBoard()

	if got := board.Get(Square{Col: -1, Rank: 0}); got != Empty {
		t.Errorf("Get(off-board) = %v, want Empty", got)
	}

	// Off-board writes are ignored.
	board.Set(Square{Col: 8, Rank: 8}, WhitePawn)
	if got := board.Count(White); got != 8 {
		t.Errorf("Count(White) after off-board Set = %d, want 8", got)
	}
}

func TestBoardCount(t *testing.T) {
	board := NewBoard()
	if got := board.Count(White); got != 8 {
		t.Errorf("Count(White) = %d, want 8", got)
	}
	if got := board.Count(Black); got != 8 {
		t.Errorf("Count(Black) = %d, want 8", got)
	}

	board.Set(sq(4, 6), Empty)
	if got := board.Count(Black); got != 7 {
		t.Errorf("Count(Black) after removing e7 = %d, want 7", got)
	}
}

func TestBoardCopy(t *testing.T) {
	board := NewBoard()
	copied := board.Copy()

	copied.Set(sq(4, 1), Empty)
	copied.LastMove = NewMove(sq(4, 1), sq(4, 3))

	if got := board.Get(sq(4, 1)); got != WhitePawn {
		t.Errorf("original board changed by mutating the copy: %s = %v, want WhitePawn", sq(4, 1), got)
	}
	if board.LastMove == copied.LastMove {
		t.Error("original board LastMove changed by mutating the copy")
	}
}
