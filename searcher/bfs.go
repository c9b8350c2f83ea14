package searcher

import (
	"context"
	"errors"
	"fmt"

	"gametree/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoSolution = errors.New("no goal state reachable")
	ErrNodeLimit  = errors.New("node limit exceeded")
)

type pathNode struct {
	state  game.State
	parent *pathNode
	move   game.Move
}

func (n *pathNode) path() []game.Move {
	moves := []game.Move{}
	for node := n; node.parent != nil; node = node.parent {
		moves = append(moves, node.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// visited holds every state seen so far, bucketed by hash and told apart by Equal
type visited map[game.StateHash][]game.State

func (v visited) add(state game.State) bool {
	hash := state.Hash()
	for _, seen := range v[hash] {
		if seen.Equal(state) {
			return false
		}
	}
	v[hash] = append(v[hash], state)
	return true
}

// BreadthFirst returns the shortest sequence of moves from start to a state satisfying goal.
// A nil goal accepts states won by the maximizer. maxNodes bounds the number of distinct
// states generated, zero means unbounded.
func BreadthFirst(ctx context.Context, start game.State, goal func(game.State) bool, maxNodes int) ([]game.Move, error) {
	if start == nil {
		return nil, ErrNilState
	}
	if goal == nil {
		goal = func(s game.State) bool {
			return s.Outcome() == game.MaximizerWins
		}
	}

	if goal(start) {
		return []game.Move{}, nil
	}

	seen := visited{}
	seen.add(start)
	generated := 1
	queue := []*pathNode{{state: start}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[0]
		queue = queue[1:]

		for _, successor := range current.state.Successors() {
			if !seen.add(successor.State) {
				continue
			}
			generated++

			node := &pathNode{state: successor.State, parent: current, move: successor.Move}
			if goal(successor.State) {
				log.Debug().Int("states", generated).Msg("goal reached")
				return node.path(), nil
			}
			if maxNodes > 0 && generated > maxNodes {
				return nil, fmt.Errorf("%w: %d", ErrNodeLimit, maxNodes)
			}
			queue = append(queue, node)
		}
	}
	return nil, ErrNoSolution
}
