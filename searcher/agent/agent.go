package agent

import (
	"context"
	"errors"

	"gametree/game"
	"gametree/searcher"
)

var ErrNoMoves = errors.New("no moves available")

type Agent interface {
	// FindMove returns the chosen successor and search metrics (if collected)
	FindMove(ctx context.Context, state game.State) (game.Successor, searcher.Metrics, error)
}
