package searcher

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"minichess/game"
)

var ErrMalformedRow = errors.New("malformed game record")

// LoadTree builds a game tree from CSV records, one game per row, each field
// a move token in playing order. Games are inserted with a probability of 0.
// Malformed rows and rows that are not a legal game from the starting
// position are skipped; the returned error lists all of them while the tree
// still holds every valid game. Any other read error stops loading.
func LoadTree(r io.Reader) (*Node, error) {
	tree := NewTree()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var errs *multierror.Error
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read game records on row %d", row)
		}

		moves, err := parseRecord(record)
		if err != nil {
			log.Warn().Msgf("skipping game record on row %d: %v", row, err)
			errs = multierror.Append(errs, errors.Wrapf(ErrMalformedRow, "row %d: %v", row, err))
			continue
		}
		tree.InsertSequence(moves, 0)
	}

	return tree, errs.ErrorOrNil()
}

// LoadTreeFile is LoadTree over a file.
func LoadTreeFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open game records %s", path)
	}
	defer f.Close()

	return LoadTree(f)
}

func parseRecord(record []string) ([]game.Move, error) {
	moves := make([]game.Move, len(record))
	for i, token := range record {
		if _, _, err := game.ParseMove(token); err != nil {
			return nil, err
		}
		moves[i] = game.Move(token)
	}
	if _, err := game.Replay(moves); err != nil {
		return nil, err
	}
	return moves, nil
}
