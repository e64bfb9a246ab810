package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minichess/game"
)

var (
	W = game.WhiteWins
	B = game.BlackWins
	D = game.Draw
)

func TestCollector(t *testing.T) {
	t.Run("recording a game", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddMove(true, "a2b3", time.Millisecond)
		c.AddMove(false, "b4b3", 2*time.Millisecond)

		metric, moves := c.Complete(game.BlackWins)

		require.NotEmpty(t, metric.ID)
		require.Equal(t, game.BlackWins, metric.Winner)
		require.Equal(t, []game.Move{"a2b3", "b4b3"}, metric.Moves)
		require.Equal(t, 2, metric.TotalMoves())
		require.False(t, metric.EndTime.Before(metric.StartTime))
		require.Len(t, moves, 2)
		require.Equal(t, 2, moves[1].Step)
		require.False(t, moves[1].White)
	})

	t.Run("restarting gives a new id and clears moves", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddMove(true, "a2b3", 0)
		first, _ := c.Complete(game.Draw)

		c.Start()
		second, moves := c.Complete(game.Draw)

		require.NotEqual(t, first.ID, second.ID)
		require.Empty(t, moves)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddMove(true, "a2b3", 0)

		metric, moves := c.Complete(game.WhiteWins)

		require.Equal(t, GameMetric{}, metric)
		require.Nil(t, moves)
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize([]game.Outcome{W, B, W, D})

	require.Equal(t, Summary{Games: 4, WhiteWins: 2, BlackWins: 1, Draws: 1}, s)
	require.InDelta(t, 50.0, s.Percent(W), 1e-9)
	require.InDelta(t, 25.0, s.Percent(D), 1e-9)
	require.Equal(t, "White: 2/4 (50.00%)\nBlack: 1/4 (25.00%)\nDraw: 1/4 (25.00%)\n", s.String())

	require.Zero(t, Summarize(nil).Percent(W))
	require.Panics(t, func() { Summarize([]game.Outcome{game.NoOutcome}) })
}

func TestWinRates(t *testing.T) {
	outcomes := []game.Outcome{W, B, W, W, D}

	t.Run("cumulative", func(t *testing.T) {
		rates := CumulativeWinRate(outcomes)
		require.InDeltaSlice(t, []float64{1, 0.5, 2.0 / 3, 0.75, 0.6}, rates, 1e-9)
	})

	t.Run("rolling over a window shorter than the series", func(t *testing.T) {
		rates := RollingWinRate(outcomes, 2)
		require.InDeltaSlice(t, []float64{1, 0.5, 0.5, 1, 0.5}, rates, 1e-9)
	})

	t.Run("rolling over a window longer than the series is cumulative", func(t *testing.T) {
		require.InDeltaSlice(t, CumulativeWinRate(outcomes), RollingWinRate(outcomes, 50), 1e-9)
	})

	t.Run("empty series", func(t *testing.T) {
		require.Empty(t, CumulativeWinRate(nil))
		require.Empty(t, RollingWinRate(nil, 3))
	})

	t.Run("non-positive window panics", func(t *testing.T) {
		require.Panics(t, func() { RollingWinRate(outcomes, 0) })
	})
}

func sampleRecords() []GameRecord {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return []GameRecord{
		{
			ID: 0, White: "exploring(0.5)", Black: "random",
			GameMetric: GameMetric{
				ID: "game-0", Winner: W, Moves: []game.Move{"a2b3", "b4b3"},
				StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
			},
		},
		{
			ID: 1, White: "exploring(0.5)", Black: "random",
			GameMetric: GameMetric{
				ID: "game-1", Winner: D, Moves: []game.Move{"c2d3", "d4d3", "d2c3"},
				StartTime: start, EndTime: start.Add(2 * time.Second), Duration: 2 * time.Second,
			},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("writing game records", func(t *testing.T) {
		require.NoError(t, w.WriteGameRecords(sampleRecords()))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "winner", rows[0][4])
		require.Equal(t, []string{"0", "game-0", "exploring(0.5)", "random", "White", "2"}, rows[1][:6])
		require.Equal(t, "Draw", rows[2][4])
		require.Equal(t, "2s", rows[2][8])
	})

	t.Run("writing move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 0, MoveMetric: MoveMetric{Step: 1, White: true, Move: "a2b3", Duration: time.Millisecond}},
			{Game: 0, MoveMetric: MoveMetric{Step: 2, White: false, Move: "b4b3"}},
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, [][]string{
			{"game", "step", "player", "move", "duration"},
			{"0", "1", "White", "a2b3", "1ms"},
			{"0", "2", "Black", "b4b3", "0s"},
		}, rows)
	})

	t.Run("writing move sequences", func(t *testing.T) {
		require.NoError(t, w.WriteSequences(sampleRecords()))

		rows := readCSV(t, filepath.Join(w.Dir(), "sequences.csv"))
		require.Equal(t, [][]string{{"a2b3", "b4b3"}, {"c2d3", "d4d3", "d2c3"}}, rows)
	})
}

func TestArchive(t *testing.T) {
	t.Run("round trip through parquet", func(t *testing.T) {
		w, err := NewWriter(t.TempDir())
		require.NoError(t, err)

		records := sampleRecords()
		rows := []ArchiveRow{NewArchiveRow(records[0], 0.5), NewArchiveRow(records[1], 0.25)}
		require.NoError(t, w.WriteArchive(rows))
		require.NoFileExists(t, w.ArchivePath()+".tmp")

		read, err := ReadArchive(w.ArchivePath())
		require.NoError(t, err)
		require.Equal(t, rows, read)

		moves, winner, err := read[1].Sequence()
		require.NoError(t, err)
		require.Equal(t, []game.Move{"c2d3", "d4d3", "d2c3"}, moves)
		require.Equal(t, game.Draw, winner)
	})

	t.Run("malformed winner", func(t *testing.T) {
		_, _, err := ArchiveRow{Winner: "Purple"}.Sequence()
		require.ErrorIs(t, err, game.ErrMalformedOutcome)
	})

	t.Run("missing archive", func(t *testing.T) {
		_, err := ReadArchive(filepath.Join(t.TempDir(), "missing.parquet"))
		require.Error(t, err)
	})
}
