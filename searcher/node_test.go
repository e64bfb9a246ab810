package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minichess/game"
)

// sampleTree mirrors the hand-built example tree used throughout the tests.
func sampleTree() *Node {
	root := NewTree()

	root.AddChild(NewNode("a2b3", false, 0.2))
	root.AddChild(NewNode("b2c3", false, 0.3))
	root.AddChild(NewNode("b2a3", false, 0.1))

	reply := NewNode("d4d3", true, 0.12)
	reply.AddChild(NewNode("d2c3", false, 0.69))
	reply.AddChild(NewNode("b1d3", false, 0.12))
	opening := NewNode("c2d3", false, 0.5)
	opening.AddChild(reply)
	root.AddChild(opening)

	root.AddChild(NewNode("c2b3", false, 0.5))
	root.AddChild(NewNode("d2c3", false, 0.2))
	return root
}

func TestAddChild(t *testing.T) {
	t.Run("taking the maximum when White is to move", func(t *testing.T) {
		node := NewNode(game.StartMove, true, 0)
		node.AddChild(NewNode("a2b3", false, 0.2))
		node.AddChild(NewNode("b2c3", false, 0.3))
		node.AddChild(NewNode("b2a3", false, 0.1))

		require.Equal(t, 0.3, node.WhiteWinProbability)
		require.Len(t, node.Children(), 3)
	})

	t.Run("taking the mean when Black is to move", func(t *testing.T) {
		node := NewNode("c2d3", false, 0.9)
		node.AddChild(NewNode("d4d3", true, 0.5))
		node.AddChild(NewNode("b4b3", true, 0.12))

		require.InDelta(t, 0.31, node.WhiteWinProbability, 1e-9)
	})

	t.Run("aggregating nested subtrees", func(t *testing.T) {
		root := sampleTree()
		opening := root.FindChild("c2d3")

		require.Equal(t, 0.69, opening.FindChild("d4d3").WhiteWinProbability)
		require.Equal(t, 0.69, opening.WhiteWinProbability)
		require.Equal(t, 0.69, root.WhiteWinProbability)
	})

	t.Run("leaving leaves alone", func(t *testing.T) {
		leaf := NewNode("a2b3", false, 0.42)

		require.True(t, leaf.IsLeaf())
		require.Equal(t, 0.42, leaf.WhiteWinProbability)
	})
}

func TestNewNode(t *testing.T) {
	t.Run("creating the root sentinel", func(t *testing.T) {
		root := NewTree()

		require.Equal(t, game.StartMove, root.Move)
		require.True(t, root.WhiteToMove)
		require.Equal(t, 0.0, root.WhiteWinProbability)
	})

	t.Run("panics with probability out of range", func(t *testing.T) {
		require.Panics(t, func() { NewNode("a2b3", false, 1.5) })
		require.Panics(t, func() { NewNode("a2b3", false, -0.1) })
	})
}

func TestFindChild(t *testing.T) {
	root := sampleTree()

	t.Run("finding an existing move", func(t *testing.T) {
		child := root.FindChild("b2c3")

		require.NotNil(t, child)
		require.Equal(t, game.Move("b2c3"), child.Move)
	})

	t.Run("missing move", func(t *testing.T) {
		require.Nil(t, root.FindChild("d4d1"))
		require.Nil(t, NewTree().FindChild("a2b3"))
	})
}

func TestMaxMinChild(t *testing.T) {
	t.Run("breaking ties towards the leftmost child", func(t *testing.T) {
		node := NewTree()
		first := NewNode("a2b3", false, 0.7)
		second := NewNode("b2c3", false, 0.7)
		low := NewNode("b2a3", false, 0.1)
		lowAgain := NewNode("c2d3", false, 0.1)
		node.AddChild(first)
		node.AddChild(low)
		node.AddChild(second)
		node.AddChild(lowAgain)

		require.Same(t, first, node.MaxChild(), "Earlier child should win a tie for the maximum")
		require.Same(t, low, node.MinChild(), "Earlier child should win a tie for the minimum")
	})

	t.Run("panics on a leaf", func(t *testing.T) {
		require.Panics(t, func() { NewTree().MaxChild() })
	})
}

func TestSizeAndString(t *testing.T) {
	root := NewTree()
	root.AddChild(NewNode("a2b3", false, 0.25))

	require.Equal(t, 10, sampleTree().Size())
	require.Equal(t, "* -> White's move 0.25\n  a2b3 -> Black's move 0.25\n", root.String())
}
