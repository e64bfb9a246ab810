package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"minichess/agent"
	"minichess/engine"
	"minichess/experiments/metrics"
	"minichess/game"
	"minichess/searcher"
)

const graphFile = "tree.dot"

// Report is what an experiment run produced.
type Report struct {
	Tree    *searcher.Node
	Results []engine.Result
	Summary metrics.Summary
	// Cumulative and Rolling are White's win rate series over Results.
	Cumulative []float64
	Rolling    []float64
	Dir        string
	// Graph is the path of the tree's DOT rendering.
	Graph string
}

type matchUp struct {
	white, black       string
	newWhite, newBlack func() agent.Agent
}

// Run executes the experiment described by cfg and stores its records in a
// timestamped folder under cfg.OutputDir. A game that cannot be finished,
// e.g. over recorded games holding an illegal move, fails the run.
func Run(cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []Option{}
	if cfg.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	o := newOptions(opts)

	log.Info().Msgf("starting %s experiment %s...", cfg.Kind, cfg.Name)

	var (
		tree        *searcher.Node
		records     []metrics.GameRecord
		moveRecords []metrics.MoveRecord
		rows        []metrics.ArchiveRow
		results     []engine.Result
	)
	record := func(white, black string, exploration float64, result engine.Result) {
		r := metrics.GameRecord{ID: len(records), White: white, Black: black, GameMetric: result.Metric}
		records = append(records, r)
		for _, mm := range result.MoveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: r.ID, MoveMetric: mm})
		}
		rows = append(rows, metrics.NewArchiveRow(r, exploration))
		results = append(results, result)
	}
	play := func(m matchUp) error {
		matchResults, _, err := RunGames(cfg.Games, m.newWhite, m.newBlack, WithSeed(o.rand.Uint64()))
		if err != nil {
			return errors.Wrapf(err, "%s against %s", m.white, m.black)
		}
		for _, result := range matchResults {
			record(m.white, m.black, 0, result)
		}
		return nil
	}

	switch cfg.Kind {
	case KindLearning:
		tree = searcher.NewTree()
		if cfg.Archive != "" {
			n, err := ReplayArchive(cfg.Archive, tree)
			if err != nil && n == 0 {
				return nil, err
			}
			if err != nil {
				log.Warn().Msgf("some archived games were skipped: %v", err)
			}
			log.Info().Msgf("replayed %d archived games", n)
		}

		probabilities := cfg.LearningProbabilities()
		_, learning, err := RunLearning(probabilities, WithTree(tree), WithSeed(o.rand.Uint64()))
		if err != nil {
			return nil, err
		}
		for i, result := range learning {
			record(fmt.Sprintf("exploring(%.2f)", probabilities[i]), "random", probabilities[i], result)
		}

		if cfg.EvaluationGames > 0 {
			evaluation, summary, err := RunGames(cfg.EvaluationGames,
				func() agent.Agent { return agent.NewGreedy(tree, o.seed()) },
				func() agent.Agent { return agent.NewRandom(o.seed()) },
			)
			if err != nil {
				return nil, errors.Wrap(err, "greedy evaluation")
			}
			for _, result := range evaluation {
				record("greedy", "random", 0, result)
			}
			log.Info().Msgf("greedy evaluation after learning\n%s", summary)
		}

	case KindRecorded:
		var err error
		tree, err = searcher.LoadTreeFile(cfg.GamesFile)
		if err != nil && (tree == nil || !errors.Is(err, searcher.ErrMalformedRow)) {
			return nil, err
		}
		if err != nil {
			log.Warn().Msgf("some game records were skipped: %v", err)
		}

		m := matchUp{
			white:    "random-tree",
			black:    "random-tree",
			newWhite: func() agent.Agent { return agent.NewRandomTree(tree, o.seed()) },
			newBlack: func() agent.Agent { return agent.NewRandomTree(tree, o.seed()) },
		}
		if cfg.BlackRandom {
			m.black = "random"
			m.newBlack = func() agent.Agent { return agent.NewRandom(o.seed()) }
		}
		if err := play(m); err != nil {
			return nil, err
		}

	case KindComplete:
		tree = searcher.Expand(game.StartMove, game.NewGame(), cfg.Depth)
		log.Info().Msgf("expanded tree to depth %d with %d nodes", cfg.Depth, tree.Size())

		greedy := func() agent.Agent { return agent.NewGreedy(tree, o.seed()) }
		random := func() agent.Agent { return agent.NewRandom(o.seed()) }
		m := matchUp{white: "greedy", black: "random", newWhite: greedy, newBlack: random}
		if !cfg.WhiteGreedy {
			m = matchUp{white: "random", black: "greedy", newWhite: random, newBlack: greedy}
		}
		if err := play(m); err != nil {
			return nil, err
		}
	}

	log.Info().Msgf("completed %s experiment %s", cfg.Kind, cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := store(writer, records, moveRecords, rows); err != nil {
		return nil, err
	}

	graph := filepath.Join(writer.Dir(), graphFile)
	if err := writeGraph(graph, tree, cfg.GraphDepth); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored tree rendering in %s", graph)

	outcomes := Outcomes(results)
	return &Report{
		Tree:       tree,
		Results:    results,
		Summary:    metrics.Summarize(outcomes),
		Cumulative: metrics.CumulativeWinRate(outcomes),
		Rolling:    metrics.RollingWinRate(outcomes, cfg.RollingWindow),
		Dir:        writer.Dir(),
		Graph:      graph,
	}, nil
}

func store(writer *metrics.Writer, records []metrics.GameRecord, moveRecords []metrics.MoveRecord, rows []metrics.ArchiveRow) error {
	err := writer.WriteGameRecords(records)
	if err != nil {
		return errors.Wrap(err, "failed to store game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return errors.Wrap(err, "failed to store move records")
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSequences(records)
	if err != nil {
		return errors.Wrap(err, "failed to store move sequences")
	}

	err = writer.WriteArchive(rows)
	if err != nil {
		return errors.Wrap(err, "failed to store game archive")
	}
	log.Info().Msgf("stored game archive in %s", writer.ArchivePath())
	return nil
}

// writeGraph renders the top depth levels of tree as Graphviz DOT.
func writeGraph(path string, tree *searcher.Node, depth int) error {
	dot, err := searcher.WriteDOT(tree, depth)
	if err != nil {
		return errors.Wrap(err, "failed to render tree")
	}
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return errors.Wrap(err, "failed to store tree rendering")
	}
	return nil
}

// ReplayArchive inserts every archived game into tree, with 1.0 for White
// wins and 0.0 otherwise, and returns how many games were inserted. Rows that
// cannot be decoded or are not legal games are skipped and reported together.
func ReplayArchive(path string, tree *searcher.Node) (int, error) {
	rows, err := metrics.ReadArchive(path)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var errs *multierror.Error
	inserted := 0
	for _, row := range rows {
		moves, winner, err := row.Sequence()
		if err == nil {
			_, err = game.Replay(moves)
		}
		if err != nil {
			log.Warn().Msgf("skipping archived game %s: %v", row.GameID, err)
			errs = multierror.Append(errs, errors.Wrapf(err, "game %s", row.GameID))
			continue
		}
		value := 0.0
		if winner == game.WhiteWins {
			value = 1.0
		}
		tree.InsertSequence(moves, value)
		inserted++
	}
	return inserted, errs.ErrorOrNil()
}
