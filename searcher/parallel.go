package searcher

import (
	"context"
	"math"
	"sync"

	"gametree/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// rootWindow is the root's search window, shared by the goroutines searching its children.
// Only the side owned by the root player ever moves: alpha at a max root, beta at a min root.
type rootWindow struct {
	mu         sync.Mutex
	maximizing bool
	alpha      float64
	beta       float64
}

func (r *rootWindow) get() (alpha, beta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.alpha, r.beta
}

func (r *rootWindow) raise(score float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.maximizing {
		r.alpha = math.Max(r.alpha, score)
	} else {
		r.beta = math.Min(r.beta, score)
	}
}

type childResult struct {
	score float64
	// exact is false when the child failed low against the window it was searched with, so
	// its score is only a bound that a sibling already beats or matches
	exact bool
	done  bool
}

// parallel searches the root's children concurrently, each child sequentially below.
// The score matches the sequential search; the move may differ between children of equal score.
func (w *walker) parallel(ctx context.Context, state game.State, goroutines int) (float64, game.Successor, error) {
	maximizing := state.Maximizing()
	if err := ctx.Err(); err != nil {
		return 0, game.Successor{}, err
	}
	w.metrics.AddNode()

	if state.IsTerminal() || w.maxDepth <= 0 {
		return w.evaluate(state), game.Successor{}, nil
	}

	children := state.Successors()
	if len(children) == 0 {
		w.metrics.AddContractViolation()
		log.Debug().Uint64("hash", uint64(state.Hash())).Msg("non-terminal root has no successors")
		return w.evaluate(state), game.Successor{}, nil
	}

	window := &rootWindow{maximizing: maximizing, alpha: math.Inf(-1), beta: math.Inf(1)}
	results := make([]childResult, len(children))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(goroutines)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			alpha, beta := window.get()
			score, _, err := w.alphabeta(gctx, child.State, 1, alpha, beta, !maximizing)
			if err != nil {
				return err
			}

			exact := score > alpha
			if !maximizing {
				exact = score < beta
			}
			if exact {
				window.raise(score)
			}
			results[i] = childResult{score: score, exact: exact, done: true}
			return nil
		})
	}
	err := g.Wait()

	bestScore := math.Inf(1)
	if maximizing {
		bestScore = math.Inf(-1)
	}
	var best game.Successor
	for i, result := range results {
		if !result.done || !result.exact {
			continue
		}
		if (maximizing && result.score > bestScore) || (!maximizing && result.score < bestScore) {
			bestScore = result.score
			best = children[i]
		}
	}
	return bestScore, best, err
}
