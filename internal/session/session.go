// Package session serializes access to game boards. Legality evaluation and
// mutation for one move complete atomically relative to any other move
// request on the same board; a single mutex per session is enough given the
// board's small fixed size.
package session

import (
	"sync"

	"github.com/lgbarn/pawns-only-go/internal/chess"
	"github.com/lgbarn/pawns-only-go/internal/engine"
	"github.com/lgbarn/pawns-only-go/internal/errors"
)

// Session owns one board for the lifetime of a game between two players.
type Session struct {
	id        string
	whiteName string
	blackName string

	mu      sync.Mutex
	board   *chess.Board
	toMove  chess.Colour
	outcome engine.Outcome
}

// newSession creates a session with a freshly set up board, White to move.
func newSession(id, whiteName, blackName string) *Session {
	return &Session{
		id:        id,
		whiteName: whiteName,
		blackName: blackName,
		board:     chess.NewBoard(),
		toMove:    chess.White,
		outcome:   engine.InProgress,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// PlayerName returns the name of the player of the given colour.
func (s *Session) PlayerName(colour chess.Colour) string {
	if colour == chess.White {
		return s.whiteName
	}
	return s.blackName
}

// ToMove returns the colour whose turn it is.
func (s *Session) ToMove() chess.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toMove
}

// Outcome returns the current game state.
func (s *Session) Outcome() engine.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Copy()
}

// Play applies a move on behalf of the side to move and reclassifies the
// game. The turn passes to the opponent only while the game is in progress;
// once a terminal outcome is reached further moves fail with ErrGameOver.
func (s *Session) Play(move chess.Move) (engine.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome.Terminal() {
		return s.outcome, errors.ErrGameOver
	}

	if err := engine.ApplyMove(s.board, move, s.toMove); err != nil {
		return s.outcome, err
	}

	s.outcome = engine.Classify(s.board)
	if s.outcome == engine.InProgress {
		s.toMove = s.toMove.Opposite()
	}
	return s.outcome, nil
}
