package searcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gametree/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidDepth = errors.New("search depth must be positive")
	ErrNilState     = errors.New("nil state")
)

// Result of a bounded search from the root. Move is nil when the root is terminal or has no
// successors, in which case Score is the root's own evaluation.
type Result struct {
	Score   float64
	Move    game.Move
	Next    game.State
	Metrics Metrics
}

func (r Result) HasMove() bool {
	return r.Move != nil
}

// Searcher runs depth-limited minimax with alpha-beta pruning. It holds no state between
// searches and may be shared between goroutines.
type Searcher struct {
	maxDepth   int
	goroutines int
	timeout    time.Duration
	pruning    bool
	collect    bool
}

func New(maxDepth int, options ...Option) (*Searcher, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxDepth)
	}

	s := &Searcher{
		maxDepth:   maxDepth,
		goroutines: 1,
		pruning:    true,
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// Search looks maxDepth plies ahead of state and returns the best move for the side to move
func Search(ctx context.Context, state game.State, maxDepth int, options ...Option) (Result, error) {
	s, err := New(maxDepth, options...)
	if err != nil {
		return Result{}, err
	}
	return s.Search(ctx, state)
}

func (s *Searcher) Search(ctx context.Context, state game.State) (Result, error) {
	if state == nil {
		return Result{}, ErrNilState
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	metrics := NewNoMetricsCollector()
	if s.collect {
		metrics = NewMetricsCollector()
	}
	metrics.Start(s.maxDepth, s.goroutines, s.pruning)

	w := &walker{maxDepth: s.maxDepth, pruning: s.pruning, metrics: metrics}

	var (
		score float64
		best  game.Successor
		err   error
	)
	if s.goroutines > 1 {
		score, best, err = w.parallel(ctx, state, s.goroutines)
	} else {
		score, best, err = w.alphabeta(ctx, state, 0, math.Inf(-1), math.Inf(1), state.Maximizing())
	}

	result := Result{Score: score, Move: best.Move, Next: best.State, Metrics: metrics.Complete()}
	if err != nil {
		return result, fmt.Errorf("search interrupted: %w", err)
	}

	log.Debug().
		Float64("score", result.Score).
		Bool("move", result.HasMove()).
		Int("depth", s.maxDepth).
		Int64("nodes", result.Metrics.Nodes).
		Int64("cutoffs", result.Metrics.Cutoffs).
		Msg("search complete")
	return result, nil
}
