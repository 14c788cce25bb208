// Package parser converts one line of player input into a typed action.
package parser

import "github.com/lgbarn/pawns-only-go/internal/chess"

// ActionType distinguishes the possible results of parsing an input line.
type ActionType int

const (
	// MoveAction is a board move in long algebraic form, e.g. "e2e4".
	MoveAction ActionType = iota
	// ExitAction is the literal exit token.
	ExitAction
	// InvalidAction is any line matching neither grammar.
	InvalidAction
)

// Action is the parsed form of one line of player input. Move is only
// meaningful when Type is MoveAction.
type Action struct {
	Type ActionType
	Move chess.Move
}

// ExitToken ends the game when entered verbatim. The match is case-sensitive.
const ExitToken = "exit"

// ParseAction parses an input line into an action. A move must be exactly
// four characters, [a-h][1-8][a-h][1-8]; anything else that is not the exit
// token is invalid. The function is pure and never fails; geometric
// legality of a parsed move is the engine's concern, not the parser's.
func ParseAction(line string) Action {
	if line == ExitToken {
		return Action{Type: ExitAction}
	}

	if len(line) != 4 {
		return Action{Type: InvalidAction}
	}

	from, ok := parseSquare(line[0], line[1])
	if !ok {
		return Action{Type: InvalidAction}
	}
	to, ok := parseSquare(line[2], line[3])
	if !ok {
		return Action{Type: InvalidAction}
	}

	return Action{Type: MoveAction, Move: chess.NewMove(from, to)}
}

// parseSquare converts a file letter and rank digit into a square.
func parseSquare(file, rank byte) (chess.Square, bool) {
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.Square{}, false
	}
	return chess.Square{Col: int(file - 'a'), Rank: int(rank - '1')}, true
}
