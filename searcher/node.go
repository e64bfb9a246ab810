package searcher

import (
	"fmt"
	"strings"

	"minichess/game"
	"minichess/utils"
)

// Node is a game tree node. It holds the move that leads to it, whose turn
// follows that move, and the estimated probability that White wins from it.
//
// For a node with children the probability is the maximum over the children
// when White is to move and their mean when Black is to move. The value is
// cached and recomputed whenever a child is attached; children are assumed
// to be up to date. Leaves keep the probability they were created with.
type Node struct {
	Move                game.Move
	WhiteToMove         bool
	WhiteWinProbability float64
	children            []*Node
}

// NewNode creates a leaf.
func NewNode(move game.Move, whiteToMove bool, whiteWinProbability float64) *Node {
	if whiteWinProbability < 0 || whiteWinProbability > 1 {
		panic(fmt.Sprintf("win probability %v out of [0, 1]", whiteWinProbability))
	}
	return &Node{
		Move:                move,
		WhiteToMove:         whiteToMove,
		WhiteWinProbability: whiteWinProbability,
	}
}

// NewTree creates the root of an empty game tree. White moves first.
func NewTree() *Node {
	return NewNode(game.StartMove, true, 0)
}

// Children returns the subtrees in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// AddChild attaches a subtree and refreshes this node's probability.
func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
	n.update()
}

// FindChild returns the subtree reached by move, or nil.
func (n *Node) FindChild(move game.Move) *Node {
	for _, child := range n.children {
		if child.Move == move {
			return child
		}
	}
	return nil
}

func (n *Node) update() {
	if n.IsLeaf() {
		return
	}

	if n.WhiteToMove {
		n.WhiteWinProbability = n.MaxChild().WhiteWinProbability
		return
	}

	probabilities := make([]float64, len(n.children))
	for i, child := range n.children {
		probabilities[i] = child.WhiteWinProbability
	}
	n.WhiteWinProbability = utils.Mean(probabilities)
}

// MaxChild returns the child with the highest probability, the leftmost on ties.
func (n *Node) MaxChild() *Node {
	return n.pick(func(candidate, best float64) bool { return candidate > best })
}

// MinChild returns the child with the lowest probability, the leftmost on ties.
func (n *Node) MinChild() *Node {
	return n.pick(func(candidate, best float64) bool { return candidate < best })
}

func (n *Node) pick(better func(candidate, best float64) bool) *Node {
	if n.IsLeaf() {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if better(child.WhiteWinProbability, best.WhiteWinProbability) {
			best = child
		}
	}
	return best
}

// Size counts the nodes of the tree, root included.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}

// String renders the tree with two spaces of indentation per level.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	turn := "Black's move"
	if n.WhiteToMove {
		turn = "White's move"
	}
	fmt.Fprintf(sb, "%s%s -> %s %v\n", strings.Repeat("  ", depth), n.Move, turn, n.WhiteWinProbability)
	for _, child := range n.children {
		child.write(sb, depth+1)
	}
}
