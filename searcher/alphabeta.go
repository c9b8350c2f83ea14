package searcher

import (
	"context"
	"fmt"
	"math"

	"gametree/game"

	"github.com/rs/zerolog/log"
)

type walker struct {
	maxDepth int
	pruning  bool
	metrics  MetricsCollector
}

// AlphaBeta scores state searched from depth down to maxDepth inside the window
// (alpha, beta). The move is the one leading to the chosen child, nil at a leaf.
func AlphaBeta(ctx context.Context, state game.State, depth int, alpha, beta float64, maximizing bool, maxDepth int) (float64, game.Move, error) {
	if maxDepth <= 0 {
		return 0, nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxDepth)
	}
	if state == nil {
		return 0, nil, ErrNilState
	}

	w := &walker{maxDepth: maxDepth, pruning: true, metrics: NewNoMetricsCollector()}
	score, best, err := w.alphabeta(ctx, state, depth, alpha, beta, maximizing)
	return score, best.Move, err
}

func (w *walker) alphabeta(ctx context.Context, state game.State, depth int, alpha, beta float64, maximizing bool) (float64, game.Successor, error) {
	if err := ctx.Err(); err != nil {
		return 0, game.Successor{}, err
	}
	w.metrics.AddNode()

	if state.IsTerminal() || depth >= w.maxDepth {
		return w.evaluate(state), game.Successor{}, nil
	}

	children := state.Successors()
	if len(children) == 0 {
		// Non-terminal states must have a move, score it as a leaf anyway
		w.metrics.AddContractViolation()
		log.Debug().Uint64("hash", uint64(state.Hash())).Int("depth", depth).Msg("non-terminal state has no successors")
		return w.evaluate(state), game.Successor{}, nil
	}

	var best game.Successor
	if maximizing {
		bestScore := math.Inf(-1)
		for _, child := range children {
			score, _, err := w.alphabeta(ctx, child.State, depth+1, alpha, beta, false)
			if err != nil {
				return bestScore, best, err
			}
			if score > bestScore {
				bestScore = score
				best = child
			}
			alpha = math.Max(alpha, score)
			if w.pruning && alpha >= beta {
				w.metrics.AddCutoff()
				break
			}
		}
		return bestScore, best, nil
	}

	bestScore := math.Inf(1)
	for _, child := range children {
		score, _, err := w.alphabeta(ctx, child.State, depth+1, alpha, beta, true)
		if err != nil {
			return bestScore, best, err
		}
		if score < bestScore {
			bestScore = score
			best = child
		}
		beta = math.Min(beta, score)
		if w.pruning && alpha >= beta {
			w.metrics.AddCutoff()
			break
		}
	}
	return bestScore, best, nil
}

func (w *walker) evaluate(state game.State) float64 {
	w.metrics.AddEvaluation()
	return state.Evaluate()
}
