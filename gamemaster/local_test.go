package gamemaster

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"minichess/game"
)

func TestNewSession(t *testing.T) {
	session := NewSession()

	require.Equal(t, game.NewGame().FEN(), session.State().FEN())
	require.Equal(t, game.NoOutcome, session.Winner())
	require.Equal(t, game.NoMove, session.LastMove())
	require.Empty(t, session.Moves())
}

func TestSessionPlay(t *testing.T) {
	t.Run("playing a valid move", func(t *testing.T) {
		session := NewSession()
		before := session.State()

		err := session.Play("a2b3")

		require.NoError(t, err)
		require.Equal(t, game.Move("a2b3"), session.LastMove())
		require.Equal(t, []game.Move{"a2b3"}, session.Moves())
		require.False(t, session.State().WhiteToMove())
		require.True(t, before.WhiteToMove(), "Earlier states should stay untouched")
		require.Len(t, session.History(), 1)
		require.Same(t, session.State(), session.History()[0].State)
	})

	t.Run("rejecting an illegal move", func(t *testing.T) {
		session := NewSession()

		err := session.Play("a4d1")

		require.True(t, errors.Is(err, game.ErrInvalidMove))
		require.Empty(t, session.Moves(), "Rejected moves should not be recorded")
	})

	t.Run("rejecting moves after the game is over", func(t *testing.T) {
		session := NewSessionFrom(game.NewState(game.StartingBoard(), true, 50))

		err := session.Play("a2b3")

		require.Equal(t, game.Draw, session.Winner())
		require.True(t, errors.Is(err, ErrGameOver))
	})
}
