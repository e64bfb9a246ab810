package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"minichess/game"
)

// ArchiveRow is one finished game with its full move sequence.
type ArchiveRow struct {
	GameID string   `parquet:"game_id,dict"`
	Index  int32    `parquet:"index"`
	White  string   `parquet:"white,dict"`
	Black  string   `parquet:"black,dict"`
	Winner string   `parquet:"winner,dict"`
	Moves  []string `parquet:"moves"`
	// Exploration is the White agent's exploration probability, zero for
	// agents that never explore.
	Exploration float64 `parquet:"exploration"`
	EndTime     int64   `parquet:"end_time_ms"`
}

func NewArchiveRow(record GameRecord, exploration float64) ArchiveRow {
	moves := make([]string, len(record.Moves))
	for i, m := range record.Moves {
		moves[i] = string(m)
	}
	return ArchiveRow{
		GameID:      record.GameMetric.ID,
		Index:       int32(record.ID),
		White:       record.White,
		Black:       record.Black,
		Winner:      record.Winner.String(),
		Moves:       moves,
		Exploration: exploration,
		EndTime:     record.EndTime.UnixMilli(),
	}
}

// Sequence returns the row's moves and outcome.
func (r ArchiveRow) Sequence() ([]game.Move, game.Outcome, error) {
	winner, err := game.ParseOutcome(r.Winner)
	if err != nil {
		return nil, game.NoOutcome, err
	}
	moves := make([]game.Move, len(r.Moves))
	for i, m := range r.Moves {
		moves[i] = game.Move(m)
	}
	return moves, winner, nil
}

func (w *Writer) ArchivePath() string {
	return filepath.Join(w.baseDir, "games.parquet")
}

// WriteArchive stores rows as a zstd-compressed parquet file next to the CSV
// records.
func (w *Writer) WriteArchive(rows []ArchiveRow) error {
	return WriteArchive(w.ArchivePath(), rows)
}

func WriteArchive(outPath string, rows []ArchiveRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "minichess_game_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

func ReadArchive(path string) ([]ArchiveRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat archive: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[ArchiveRow](pf)
	defer reader.Close()

	rows := make([]ArchiveRow, reader.NumRows())
	read := 0
	for read < len(rows) {
		n, err := reader.Read(rows[read:])
		read += n
		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet: %w", err)
		}
	}
	return rows[:read], nil
}
