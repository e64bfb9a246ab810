package engine

import (
	"minichess/experiments/metrics"
	"minichess/game"
)

type Engine interface {
	// Run plays a game until the board reports a result
	Run() (Result, error)
}

type Result struct {
	Winner      game.Outcome
	Moves       []game.Move
	Metric      metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}
