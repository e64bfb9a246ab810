package agent

import (
	"golang.org/x/exp/rand"

	"minichess/game"
	"minichess/searcher"
)

// RandomTree walks a game tree, picking uniformly among the recorded
// continuations. Once the game leaves the tree it plays random legal moves.
type RandomTree struct {
	cursor
	rand *rand.Rand
}

// NewRandomTree starts at tree, which must be the root of a game tree.
func NewRandomTree(tree *searcher.Node, opts ...Option) *RandomTree {
	o := newOptions(opts)
	return &RandomTree{cursor: cursor{node: tree}, rand: o.rand}
}

func (a *RandomTree) ChooseMove(state *game.State, previous game.Move) game.Move {
	a.follow(previous)

	if !a.hasChildren() {
		a.node = nil
		return randomMove(state, a.rand)
	}

	children := a.node.Children()
	a.node = children[a.rand.Intn(len(children))]
	return a.node.Move
}
