package agent

import (
	"golang.org/x/exp/rand"

	"minichess/game"
	"minichess/searcher"
)

// Greedy follows the continuation with the best recorded probability for the
// side to move, and plays randomly once the tree runs out.
type Greedy struct {
	cursor
	rand *rand.Rand
}

func NewGreedy(tree *searcher.Node, opts ...Option) *Greedy {
	o := newOptions(opts)
	return &Greedy{cursor: cursor{node: tree}, rand: o.rand}
}

func (a *Greedy) ChooseMove(state *game.State, previous game.Move) game.Move {
	a.follow(previous)

	if !a.hasChildren() {
		a.node = nil
		return randomMove(state, a.rand)
	}

	a.node = a.best(state.WhiteToMove())
	return a.node.Move
}
