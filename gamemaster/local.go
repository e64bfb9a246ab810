package gamemaster

import (
	"github.com/pkg/errors"

	"minichess/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update is a played move together with the position it produced.
type Update struct {
	Move  game.Move
	State *game.State
}

// Session is the mutable current game: it owns the latest immutable state
// and the history of moves that led to it.
type Session struct {
	state   *game.State
	history []Update
}

// NewSession starts a game from the standard position.
func NewSession() *Session {
	return NewSessionFrom(game.NewGame())
}

// NewSessionFrom starts a game from an arbitrary position.
func NewSessionFrom(state *game.State) *Session {
	return &Session{state: state}
}

// Play applies a move. It fails with ErrGameOver once the game has a result
// and with game.ErrInvalidMove for moves that are not legal.
func (s *Session) Play(move game.Move) error {
	if s.state.IsTerminal() {
		return errors.Wrapf(ErrGameOver, "move %q", move)
	}

	next, err := s.state.Play(move)
	if err != nil {
		return err
	}

	s.state = next
	s.history = append(s.history, Update{Move: move, State: next})
	return nil
}

func (s *Session) State() *game.State {
	return s.state
}

func (s *Session) Winner() game.Outcome {
	return s.state.Winner()
}

// LastMove returns the most recent move, or game.NoMove before the first one.
func (s *Session) LastMove() game.Move {
	if len(s.history) == 0 {
		return game.NoMove
	}
	return s.history[len(s.history)-1].Move
}

// Moves returns the moves played so far.
func (s *Session) Moves() []game.Move {
	moves := make([]game.Move, len(s.history))
	for i, u := range s.history {
		moves[i] = u.Move
	}
	return moves
}

// History returns every update in playing order.
func (s *Session) History() []Update {
	history := make([]Update, len(s.history))
	copy(history, s.history)
	return history
}
