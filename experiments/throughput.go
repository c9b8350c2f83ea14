package experiments

import (
	"context"
	"fmt"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher"

	"github.com/rs/zerolog/log"
)

var DefaultGoroutines = []int{1, 2, 4, 8}

// RunThroughputExperiment runs the same alpha-beta search with a parallel root for each
// goroutine count. The first count is the baseline for the speedup column.
func RunThroughputExperiment(ctx context.Context, state game.State, depth int, goroutines []int, outDir string) ([]metrics.ThroughputRecord, string, error) {
	if len(goroutines) == 0 {
		goroutines = DefaultGoroutines
	}

	log.Info().Msgf("starting throughput experiment at depth %d...", depth)

	records := []metrics.ThroughputRecord{}
	for _, n := range goroutines {
		result, err := runSearch(ctx, state, depth, searcher.WithGoroutines(n))
		if err != nil {
			return records, "", fmt.Errorf("search with %d goroutines: %w", n, err)
		}

		record := metrics.ThroughputRecord{Goroutines: n, SearchRecord: result}
		records = append(records, record)
		if record.Score != records[0].Score {
			log.Error().Msgf("score %v with %d goroutines differs from %v", record.Score, n, records[0].Score)
		}

		log.Info().Msgf("completed %d goroutines: %d nodes in %v (%.2fx)",
			n, record.Nodes, record.Duration, metrics.Speedup(records[0], record))
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(outDir, "throughput")
	if err != nil {
		return records, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteThroughputRecords(records)
	if err != nil {
		return records, "", err
	}
	log.Info().Msg("stored throughput records")

	return records, writer.Dir(), nil
}
