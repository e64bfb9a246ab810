package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"minichess/game"
	"minichess/searcher"
)

// Exploring plays greedily from a game tree but, with a fixed probability on
// every turn, abandons the tree for good and plays randomly instead.
type Exploring struct {
	cursor
	rand        *rand.Rand
	probability float64
}

func NewExploring(tree *searcher.Node, explorationProbability float64, opts ...Option) *Exploring {
	if explorationProbability < 0 || explorationProbability > 1 {
		panic(fmt.Sprintf("exploration probability %v out of [0, 1]", explorationProbability))
	}
	o := newOptions(opts)
	return &Exploring{
		cursor:      cursor{node: tree},
		rand:        o.rand,
		probability: explorationProbability,
	}
}

func (a *Exploring) ChooseMove(state *game.State, previous game.Move) game.Move {
	// One draw per turn, whether or not it is used
	sampled := a.rand.Float64()

	a.follow(previous)

	if !a.hasChildren() {
		return randomMove(state, a.rand)
	}

	if sampled < a.probability {
		a.node = nil
		return randomMove(state, a.rand)
	}

	a.node = a.best(state.WhiteToMove())
	return a.node.Move
}
