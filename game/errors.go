package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidMove      = errors.New("move is not valid")
	ErrMalformedMove    = errors.New("malformed move")
	ErrMalformedOutcome = errors.New("malformed outcome")
)

// InvariantError reports a position that legal play can never reach. It is
// raised with panic, never returned.
type InvariantError struct {
	FEN string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("the other player's king can never be in check at the start of your turn (%s)", e.FEN)
}

func errorf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
