package metrics

import (
	"fmt"

	"minichess/game"
)

// Summary counts game outcomes.
type Summary struct {
	Games     int
	WhiteWins int
	BlackWins int
	Draws     int
}

func Summarize(outcomes []game.Outcome) Summary {
	s := Summary{Games: len(outcomes)}
	for _, o := range outcomes {
		switch o {
		case game.WhiteWins:
			s.WhiteWins++
		case game.BlackWins:
			s.BlackWins++
		case game.Draw:
			s.Draws++
		default:
			panic(fmt.Sprintf("game without a result: %q", o))
		}
	}
	return s
}

func (s Summary) Count(o game.Outcome) int {
	switch o {
	case game.WhiteWins:
		return s.WhiteWins
	case game.BlackWins:
		return s.BlackWins
	case game.Draw:
		return s.Draws
	}
	return 0
}

// Percent of games that ended with the given outcome, in [0, 100].
func (s Summary) Percent(o game.Outcome) float64 {
	if s.Games == 0 {
		return 0
	}
	return 100.0 * float64(s.Count(o)) / float64(s.Games)
}

func (s Summary) String() string {
	var out string
	for _, o := range []game.Outcome{game.WhiteWins, game.BlackWins, game.Draw} {
		out += fmt.Sprintf("%s: %d/%d (%.2f%%)\n", o, s.Count(o), s.Games, s.Percent(o))
	}
	return out
}

// whiteWins maps outcomes to 1 for a White win and 0 otherwise.
func whiteWins(outcomes []game.Outcome) []float64 {
	values := make([]float64, len(outcomes))
	for i, o := range outcomes {
		if o == game.WhiteWins {
			values[i] = 1
		}
	}
	return values
}

// CumulativeWinRate returns, for every game i, White's win rate over games 0..i.
func CumulativeWinRate(outcomes []game.Outcome) []float64 {
	wins := whiteWins(outcomes)
	rates := make([]float64, len(wins))
	sum := 0.0
	for i, w := range wins {
		sum += w
		rates[i] = sum / float64(i+1)
	}
	return rates
}

// RollingWinRate returns, for every game i, White's win rate over the most
// recent window games ending at i. The window is shorter for the first games.
func RollingWinRate(outcomes []game.Outcome, window int) []float64 {
	if window < 1 {
		panic("window must be positive")
	}
	wins := whiteWins(outcomes)
	rates := make([]float64, len(wins))
	sum := 0.0
	for i, w := range wins {
		sum += w
		if i >= window {
			sum -= wins[i-window]
		}
		rates[i] = sum / float64(min(window, i+1))
	}
	return rates
}
