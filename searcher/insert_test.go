package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minichess/game"
)

func TestInsertSequence(t *testing.T) {
	t.Run("ignoring an empty sequence", func(t *testing.T) {
		root := NewTree()

		root.InsertSequence(nil, 1)

		require.True(t, root.IsLeaf())
		require.Equal(t, 0.0, root.WhiteWinProbability)
	})

	t.Run("creating a chain with alternating turns", func(t *testing.T) {
		root := NewTree()

		root.InsertSequence([]game.Move{"a2b3", "b4b3", "b1b3"}, 1)

		first := root.FindChild("a2b3")
		require.NotNil(t, first)
		require.False(t, first.WhiteToMove)
		second := first.FindChild("b4b3")
		require.NotNil(t, second)
		require.True(t, second.WhiteToMove)
		third := second.FindChild("b1b3")
		require.NotNil(t, third)
		require.False(t, third.WhiteToMove)
		require.True(t, third.IsLeaf())
		require.Equal(t, 4, root.Size())
		require.Equal(t, 1.0, root.WhiteWinProbability, "Outcome should reach the root")
	})

	t.Run("sharing prefixes without duplicates", func(t *testing.T) {
		root := NewTree()
		root.InsertSequence([]game.Move{"a2b3", "b4b3"}, 0)
		root.InsertSequence([]game.Move{"a2b3", "b4b3", "c2c3"}, 0)
		root.InsertSequence([]game.Move{"c2d3"}, 0)

		require.Len(t, root.Children(), 2)
		require.Len(t, root.FindChild("a2b3").Children(), 1)
		require.Equal(t, 5, root.Size())
	})

	t.Run("inserting the same sequence twice", func(t *testing.T) {
		moves := []game.Move{"a2b3", "b4b3", "b1b3"}
		root := NewTree()
		root.InsertSequence(moves, 1)
		size := root.Size()

		root.InsertSequence(moves, 1)

		require.Equal(t, size, root.Size(), "No node should be duplicated")
		require.Len(t, root.Children(), 1)
		require.Equal(t, 1.0, root.WhiteWinProbability)
	})

	t.Run("refreshing ancestors on later insertions", func(t *testing.T) {
		root := NewTree()

		root.InsertSequence([]game.Move{"a2b3", "b4b3"}, 1)
		require.Equal(t, 1.0, root.WhiteWinProbability)

		root.InsertSequence([]game.Move{"c2d3"}, 0)
		require.Equal(t, 1.0, root.WhiteWinProbability, "White picks the best continuation")

		root.InsertSequence([]game.Move{"a2b3", "a3a2"}, 0)
		require.Equal(t, 0.5, root.FindChild("a2b3").WhiteWinProbability, "Black replies are averaged")
		require.Equal(t, 0.5, root.WhiteWinProbability)
	})

	t.Run("keeping an existing leaf's value", func(t *testing.T) {
		root := NewTree()
		root.InsertSequence([]game.Move{"a2b3", "b4b3"}, 1)

		root.InsertSequence([]game.Move{"a2b3", "b4b3"}, 0)

		require.Equal(t, 1.0, root.FindChild("a2b3").FindChild("b4b3").WhiteWinProbability)
	})
}
