package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"minichess/agent"
	"minichess/experiments/metrics"
	"minichess/game"
	"minichess/gamemaster"
)

type LocalEngine struct {
	session   *gamemaster.Session
	white     agent.Agent
	black     agent.Agent
	collector metrics.Collector
}

type Option func(*LocalEngine)

func WithCollector(c metrics.Collector) Option {
	return func(e *LocalEngine) {
		e.collector = c
	}
}

// WithState starts the game from the given position instead of the standard one.
func WithState(state *game.State) Option {
	return func(e *LocalEngine) {
		e.session = gamemaster.NewSessionFrom(state)
	}
}

func New(white, black agent.Agent, opts ...Option) *LocalEngine {
	if white == nil || black == nil {
		panic("need two agents")
	}

	e := &LocalEngine{
		session:   gamemaster.NewSession(),
		white:     white,
		black:     black,
		collector: metrics.NewCollector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found. Each agent is
// told the move its opponent just made.
func (e *LocalEngine) Run() (Result, error) {
	e.collector.Start()

	for e.session.Winner() == game.NoOutcome {
		state := e.session.State()
		current, side := e.black, "Black"
		if state.WhiteToMove() {
			current, side = e.white, "White"
		}

		start := time.Now()
		move := current.ChooseMove(state, e.session.LastMove())
		e.collector.AddMove(state.WhiteToMove(), move, time.Since(start))

		if err := e.session.Play(move); err != nil {
			return Result{}, errors.Wrapf(err, "%s agent at move %d", side, state.MoveCount()+1)
		}
		log.Debug().Msgf("%s played %s", side, move)
	}

	winner := e.session.Winner()
	metric, moveMetrics := e.collector.Complete(winner)
	log.Info().Msgf("game over after %d moves, winner: %s", e.session.State().MoveCount(), winner)

	return Result{
		Winner:      winner,
		Moves:       e.session.Moves(),
		Metric:      metric,
		MoveMetrics: moveMetrics,
	}, nil
}

func (e *LocalEngine) Session() *gamemaster.Session {
	return e.session
}
