package searcher

import (
	"context"
	"fmt"
	"math"

	"gametree/game"
)

// Minimax is AlphaBeta without pruning: it visits every node down to maxDepth and breaks
// ties the same way, so both must agree on the score of any state.
func Minimax(ctx context.Context, state game.State, maxDepth int) (float64, game.Move, error) {
	if maxDepth <= 0 {
		return 0, nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxDepth)
	}
	if state == nil {
		return 0, nil, ErrNilState
	}

	w := &walker{maxDepth: maxDepth, pruning: false, metrics: NewNoMetricsCollector()}
	score, best, err := w.alphabeta(ctx, state, 0, math.Inf(-1), math.Inf(1), state.Maximizing())
	return score, best.Move, err
}
