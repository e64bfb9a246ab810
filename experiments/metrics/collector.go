package metrics

import (
	"time"

	"github.com/google/uuid"

	"minichess/game"
)

type MoveMetric struct {
	Step     int
	White    bool
	Move     game.Move
	Duration time.Duration // time the agent took to choose
}

type GameMetric struct {
	ID        string
	Winner    game.Outcome
	Moves     []game.Move
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

func (m GameMetric) TotalMoves() int {
	return len(m.Moves)
}

type Collector interface {
	Start()
	AddMove(white bool, move game.Move, elapsed time.Duration)
	Complete(winner game.Outcome) (GameMetric, []MoveMetric)
}

type collector struct {
	id        string
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.id = uuid.NewString()
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(white bool, move game.Move, elapsed time.Duration) {
	c.moves = append(c.moves, MoveMetric{
		Step:     len(c.moves) + 1,
		White:    white,
		Move:     move,
		Duration: elapsed,
	})
}

func (c *collector) Complete(winner game.Outcome) (GameMetric, []MoveMetric) {
	end := time.Now()
	moves := make([]game.Move, len(c.moves))
	for i, m := range c.moves {
		moves[i] = m.Move
	}
	return GameMetric{
		ID:        c.id,
		Winner:    winner,
		Moves:     moves,
		StartTime: c.startTime,
		EndTime:   end,
		Duration:  end.Sub(c.startTime),
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                                           {}
func (c *dummyCollector) AddMove(bool, game.Move, time.Duration)           {}
func (c *dummyCollector) Complete(game.Outcome) (GameMetric, []MoveMetric) { return GameMetric{}, nil }
