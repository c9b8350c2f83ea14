package experiments

import (
	"context"
	"fmt"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher"

	"github.com/rs/zerolog/log"
)

// RunPruningExperiment searches state at every depth from 1 to maxDepth with plain minimax
// and with alpha-beta, then stores the comparison under outDir. It returns the records and
// the directory they were written to.
func RunPruningExperiment(ctx context.Context, state game.State, maxDepth int, outDir string) ([]metrics.DepthRecord, string, error) {
	if maxDepth <= 0 {
		return nil, "", fmt.Errorf("%w: got %d", searcher.ErrInvalidDepth, maxDepth)
	}

	log.Info().Msgf("starting pruning experiment up to depth %d...", maxDepth)

	records := []metrics.DepthRecord{}
	for depth := 1; depth <= maxDepth; depth++ {
		plain, err := runSearch(ctx, state, depth, searcher.WithoutPruning())
		if err != nil {
			return records, "", fmt.Errorf("minimax at depth %d: %w", depth, err)
		}
		pruned, err := runSearch(ctx, state, depth)
		if err != nil {
			return records, "", fmt.Errorf("alpha-beta at depth %d: %w", depth, err)
		}

		record := metrics.DepthRecord{Depth: depth, Minimax: plain, AlphaBeta: pruned}
		records = append(records, record)

		event := log.Info()
		if !record.Agree() {
			event = log.Error()
		}
		event.
			Int("depth", depth).
			Bool("agree", record.Agree()).
			Int64("minimax_nodes", plain.Nodes).
			Int64("alphabeta_nodes", pruned.Nodes).
			Float64("node_ratio", record.NodeRatio()).
			Msg("completed depth")
	}

	log.Info().Msg("completed pruning experiment")

	writer, err := metrics.NewWriter(outDir, "pruning")
	if err != nil {
		return records, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteDepthRecords(records)
	if err != nil {
		return records, "", err
	}
	log.Info().Msg("stored depth records")

	err = writer.WritePruningChart(records)
	if err != nil {
		return records, "", err
	}
	log.Info().Msgf("stored pruning chart in %s", writer.Dir())

	return records, writer.Dir(), nil
}

func runSearch(ctx context.Context, state game.State, depth int, options ...searcher.Option) (metrics.SearchRecord, error) {
	options = append(options, searcher.WithMetrics())
	result, err := searcher.Search(ctx, state, depth, options...)
	if err != nil {
		return metrics.SearchRecord{}, err
	}

	record := metrics.SearchRecord{Score: result.Score, Metrics: result.Metrics}
	if result.HasMove() {
		record.Move = result.Move.String()
	}
	return record, nil
}
