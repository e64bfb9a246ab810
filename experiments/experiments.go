package experiments

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"minichess/agent"
	"minichess/engine"
	"minichess/experiments/metrics"
	"minichess/game"
	"minichess/searcher"
)

type Option func(*options)

type options struct {
	rand      *rand.Rand
	tree      *searcher.Node
	collector func() metrics.Collector
}

// WithSeed derives every agent's random source from seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewSource(seed))
	}
}

// WithTree makes the learning loop grow tree instead of a fresh one.
func WithTree(tree *searcher.Node) Option {
	return func(o *options) {
		o.tree = tree
	}
}

// WithoutMetrics replaces the per-game collector with a dummy one.
func WithoutMetrics() Option {
	return func(o *options) {
		o.collector = metrics.NewDummyCollector
	}
}

func newOptions(opts []Option) options {
	o := options{collector: metrics.NewCollector}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if o.tree == nil {
		o.tree = searcher.NewTree()
	}
	return o
}

func (o options) seed() agent.Option {
	return agent.WithSeed(o.rand.Uint64())
}

// RunLearning plays one game per exploration probability. White is an
// exploring agent over a tree shared by all games, Black plays randomly, and
// after each game its moves are inserted into the tree with 1.0 if White won
// and 0.0 otherwise. It returns the grown tree and every game's result. A
// game that cannot be finished, e.g. because the tree holds a move that is not
// legal, stops the loop with the games played so far.
func RunLearning(probabilities []float64, opts ...Option) (*searcher.Node, []engine.Result, error) {
	o := newOptions(opts)
	tree := o.tree

	log.Info().Msgf("starting learning over %d games...", len(probabilities))

	results := make([]engine.Result, 0, len(probabilities))
	for i, p := range probabilities {
		white := agent.NewExploring(tree, p, o.seed())
		black := agent.NewRandom(o.seed())

		result, err := runGame(white, black, o)
		if err != nil {
			return tree, results, errors.Wrapf(err, "learning game %d", i+1)
		}
		value := 0.0
		if result.Winner == game.WhiteWins {
			value = 1.0
		}
		tree.InsertSequence(result.Moves, value)
		results = append(results, result)

		log.Info().Msgf("completed learning game %d of %d (exploration %.2f) with winner: %s", i+1, len(probabilities), p, result.Winner)
	}

	log.Info().Msgf("completed learning, tree has %d nodes", tree.Size())
	return tree, results, nil
}

// RunGames plays n games between fresh agents built by the factories. It stops
// at the first game that cannot be finished.
func RunGames(n int, newWhite, newBlack func() agent.Agent, opts ...Option) ([]engine.Result, metrics.Summary, error) {
	if n < 1 {
		panic("need at least one game")
	}
	o := newOptions(opts)

	results := make([]engine.Result, 0, n)
	for i := 0; i < n; i++ {
		result, err := runGame(newWhite(), newBlack(), o)
		if err != nil {
			return results, metrics.Summarize(Outcomes(results)), errors.Wrapf(err, "game %d", i)
		}
		results = append(results, result)
		log.Info().Msgf("game %d winner: %s", i, result.Winner)
	}

	summary := metrics.Summarize(Outcomes(results))
	log.Info().Msgf("completed %d games\n%s", n, summary)
	return results, summary, nil
}

// runGame executes a single game between two agents.
func runGame(white, black agent.Agent, o options) (engine.Result, error) {
	e := engine.New(white, black, engine.WithCollector(o.collector()))
	return e.Run()
}

func Outcomes(results []engine.Result) []game.Outcome {
	outcomes := make([]game.Outcome, len(results))
	for i, r := range results {
		outcomes[i] = r.Winner
	}
	return outcomes
}
