package game

import "strings"

// Move encodes a minichess move as the origin square followed by the
// destination square, e.g. "a2b3".
type Move string

const (
	// StartMove marks the root of a game tree, before any move is played.
	StartMove = Move("*")
	// NoMove stands for "no previous move", i.e. the first turn of a game.
	NoMove = Move("")

	Rows = 4
	Cols = 4
)

// NewMove builds the move token for a piece travelling from one square to another.
func NewMove(from, to Square) Move {
	return Move(from.String() + to.String())
}

// ParseMove validates a move token and returns its origin and destination.
func ParseMove(token string) (from, to Square, err error) {
	token = strings.TrimSpace(token)
	if len(token) != 4 {
		return Square{}, Square{}, errorf(ErrMalformedMove, "move %q", token)
	}
	if from, err = ParseSquare(token[:2]); err != nil {
		return Square{}, Square{}, err
	}
	if to, err = ParseSquare(token[2:]); err != nil {
		return Square{}, Square{}, err
	}
	return from, to, nil
}

// From returns the origin square. The move must be well formed.
func (m Move) From() Square {
	from, _, err := ParseMove(string(m))
	if err != nil {
		panic(err)
	}
	return from
}

// To returns the destination square. The move must be well formed.
func (m Move) To() Square {
	_, to, err := ParseMove(string(m))
	if err != nil {
		panic(err)
	}
	return to
}

// Outcome is the result of a game, NoOutcome while it is still running.
type Outcome int

const (
	NoOutcome Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White"
	case BlackWins:
		return "Black"
	case Draw:
		return "Draw"
	}
	return ""
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	for _, o := range []Outcome{NoOutcome, WhiteWins, BlackWins, Draw} {
		if o.String() == s {
			return o, nil
		}
	}
	return NoOutcome, errorf(ErrMalformedOutcome, "outcome %q", s)
}
