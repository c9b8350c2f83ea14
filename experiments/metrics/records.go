package metrics

import (
	"time"

	"gametree/searcher"
)

// SearchRecord is the outcome of one search in an experiment
type SearchRecord struct {
	Score float64
	Move  string // empty when the search returned no move
	searcher.Metrics
}

// DepthRecord compares plain minimax with alpha-beta at one depth limit
type DepthRecord struct {
	Depth     int
	Minimax   SearchRecord
	AlphaBeta SearchRecord
}

// Agree reports whether pruning left the result unchanged
func (r DepthRecord) Agree() bool {
	return r.Minimax.Score == r.AlphaBeta.Score && r.Minimax.Move == r.AlphaBeta.Move
}

// NodeRatio is the share of minimax nodes that alpha-beta still visited
func (r DepthRecord) NodeRatio() float64 {
	if r.Minimax.Nodes == 0 {
		return 0
	}
	return float64(r.AlphaBeta.Nodes) / float64(r.Minimax.Nodes)
}

// ThroughputRecord measures a parallel root search with a given number of goroutines
type ThroughputRecord struct {
	Goroutines int
	SearchRecord
}

func (r ThroughputRecord) NodesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Duration.Seconds()
}

// Speedup of record over a baseline, usually the single goroutine run
func Speedup(baseline, record ThroughputRecord) float64 {
	if record.Duration <= 0 {
		return 0
	}
	return float64(baseline.Duration) / float64(record.Duration)
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
