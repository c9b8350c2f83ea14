package agent

import (
	"context"
	"fmt"

	"gametree/game"
	"gametree/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	searcher *searcher.Searcher
}

// NewMinimaxAgent returns an agent playing the alpha-beta move at the given depth
func NewMinimaxAgent(maxDepth int, options ...searcher.Option) (Agent, error) {
	s, err := searcher.New(maxDepth, options...)
	if err != nil {
		return nil, err
	}
	return minimaxAgent{searcher: s}, nil
}

// FindMove plays the searched move. A search cut short by its own timeout still plays the
// best move found; a search that yields no move falls back to the first successor.
// Only cancellation of ctx itself is returned as an error.
func (a minimaxAgent) FindMove(ctx context.Context, state game.State) (game.Successor, searcher.Metrics, error) {
	result, err := a.searcher.Search(ctx, state)
	if err != nil {
		if ctx.Err() != nil {
			return game.Successor{}, result.Metrics, err
		}
		log.Warn().Err(err).Bool("has_move", result.HasMove()).Msg("search timed out, playing best move so far")
	}

	if result.HasMove() {
		return game.Successor{Move: result.Move, State: result.Next}, result.Metrics, nil
	}

	successors := state.Successors()
	if len(successors) == 0 {
		return game.Successor{}, result.Metrics, fmt.Errorf("%w: state is terminal", ErrNoMoves)
	}
	log.Warn().Str("move", successors[0].Move.String()).Msg("search returned no move, falling back to first successor")
	return successors[0], result.Metrics, nil
}
