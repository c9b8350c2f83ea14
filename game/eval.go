package game

import "math"

const (
	DefaultWinScore = 1000.0 // Terminal win for the maximizer, negate for a loss
	DrawScore       = 0.0
)

// heuristicMargin keeps clamped heuristics strictly below the win score
const heuristicMargin = 1e-3

// Bound clamps a heuristic score so its magnitude stays strictly below win,
// so a static evaluation can never compare equal to a forced win or loss
func Bound(score, win float64) float64 {
	limit := math.Abs(win) - heuristicMargin
	if limit <= 0 {
		return 0
	}
	return math.Max(-limit, math.Min(limit, score))
}

// Terminal returns the score of a finished game from the maximizer's perspective
func Terminal(outcome Outcome, win float64) float64 {
	switch outcome {
	case MaximizerWins:
		return win
	case MinimizerWins:
		return -win
	default:
		return DrawScore
	}
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

// Balance converts the maximizer's and minimizer's tallies of some resource into a
// score between -scale and scale
func Balance(maximizer, minimizer, scale float64) float64 {
	return scale * normalize(maximizer, minimizer)
}
