package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"minichess/game"
	"minichess/searcher"
)

// Agent picks moves for one side of a game.
type Agent interface {
	// ChooseMove returns a legal move for state. previous is the opponent's
	// most recent move, or game.NoMove on the first turn. The state must have
	// at least one legal move.
	ChooseMove(state *game.State, previous game.Move) game.Move
}

type Option func(*options)

type options struct {
	rand *rand.Rand
}

// WithRand makes the agent draw from r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithSeed makes the agent deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewSource(seed))
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o
}

func randomMove(state *game.State, r *rand.Rand) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves at all")
	}
	return moves[r.Intn(len(moves))]
}

// cursor tracks the agent's position in a game tree it does not own. A nil
// node means the game has left the tree.
type cursor struct {
	node *searcher.Node
}

// follow descends along the opponent's move.
func (c *cursor) follow(previous game.Move) {
	if previous != game.NoMove && c.node != nil {
		c.node = c.node.FindChild(previous)
	}
}

func (c *cursor) hasChildren() bool {
	return c.node != nil && !c.node.IsLeaf()
}

// best returns the child that favours the side to move: the highest White
// win probability for White, the lowest for Black.
func (c *cursor) best(whiteToMove bool) *searcher.Node {
	if whiteToMove {
		return c.node.MaxChild()
	}
	return c.node.MinChild()
}

// Cursor returns the tree node the agent currently stands on, nil once it
// has left the tree.
func (c *cursor) Cursor() *searcher.Node {
	return c.node
}
