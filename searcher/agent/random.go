package agent

import (
	"context"

	"gametree/game"
	"gametree/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random moves. The same seed replays
// the same game. It is not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(ctx context.Context, state game.State) (game.Successor, searcher.Metrics, error) {
	if err := ctx.Err(); err != nil {
		return game.Successor{}, searcher.Metrics{}, err
	}

	successors := state.Successors()
	if len(successors) == 0 {
		return game.Successor{}, searcher.Metrics{}, ErrNoMoves
	}
	return sample(a.rng, successors), searcher.Metrics{}, nil
}

func sample(rng *rand.Rand, successors []game.Successor) game.Successor {
	return successors[rng.Intn(len(successors))]
}
