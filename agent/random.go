package agent

import (
	"golang.org/x/exp/rand"

	"minichess/game"
)

// Random always plays a uniformly random legal move.
type Random struct {
	rand *rand.Rand
}

func NewRandom(opts ...Option) *Random {
	o := newOptions(opts)
	return &Random{rand: o.rand}
}

func (a *Random) ChooseMove(state *game.State, _ game.Move) game.Move {
	return randomMove(state, a.rand)
}
