package engine

import (
	"context"
	"fmt"

	"gametree/game"
	"gametree/meta"
	"gametree/searcher/agent"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	state     game.State
	maximizer agent.Agent
	minimizer agent.Agent
	maxTurns  int
}

// NewLocalEngine pits two agents against each other in-process, handing the move to whichever
// side the state says is to move. A non-positive maxTurns uses the default cap.
func NewLocalEngine(state game.State, maximizer, minimizer agent.Agent, maxTurns int) *LocalEngine {
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &LocalEngine{
		state:     state,
		maximizer: maximizer,
		minimizer: minimizer,
		maxTurns:  maxTurns,
	}
}

// State returns the current position, the final one once Run returns
func (e *LocalEngine) State() game.State {
	return e.state
}

func (e *LocalEngine) Run(ctx context.Context) (game.Outcome, []MoveRecord, error) {
	log.Info().Msgf("maximizer is starting: %t", e.state.Maximizing())

	moves := []MoveRecord{}
	turn := 1
	for ; !e.state.IsTerminal() && turn <= e.maxTurns; turn++ {
		maximizing := e.state.Maximizing()
		player := e.minimizer
		if maximizing {
			player = e.maximizer
		}

		successor, metrics, err := player.FindMove(ctx, e.state)
		if err != nil {
			return game.Ongoing, moves, fmt.Errorf("turn %d: %w", turn, err)
		}
		if metrics.ContractViolations > 0 {
			log.Warn().
				Int("turn", turn).
				Int64("violations", metrics.ContractViolations).
				Msg("search met non-terminal states without successors")
		}

		moves = append(moves, MoveRecord{
			Turn:       turn,
			Maximizing: maximizing,
			Move:       successor.Move.String(),
			Metrics:    metrics,
		})
		log.Info().
			Int("turn", turn).
			Bool("maximizing", maximizing).
			Str("move", successor.Move.String()).
			Int64("nodes", metrics.Nodes).
			Dur("duration", metrics.Duration).
			Msg("move played")

		e.state = successor.State
	}

	outcome := e.state.Outcome()
	if outcome == game.Ongoing {
		log.Info().Msgf("stopped after %d turns without a result", e.maxTurns)
	} else {
		log.Info().Msgf("game over after %d turns: %s", turn-1, outcome)
	}
	return outcome, moves, nil
}
