package engine

import (
	"context"

	"gametree/game"
	"gametree/searcher"
)

type Engine interface {
	// Run plays until the game ends or the turn limit is reached
	Run(ctx context.Context) (outcome game.Outcome, moves []MoveRecord, err error)
}

// MoveRecord describes one move played by an engine
type MoveRecord struct {
	Turn       int
	Maximizing bool
	Move       string
	Metrics    searcher.Metrics
}
