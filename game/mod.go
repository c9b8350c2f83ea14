package game

// Move identifies a transition between two states. Only the game that produced it
// interprets it; String returns a human-readable form for display.
type Move interface {
	String() string
}

type StateHash uint64

// Successor pairs a state with the move that produced it
type Successor struct {
	Move  Move
	State State
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Maximizing reports whether the maximizing side is to move
	Maximizing() bool
	IsTerminal() bool
	Successors() []Successor
	// Evaluate scores the state from a fixed perspective: positive favors the
	// maximizing side regardless of who is to move
	Evaluate() float64
	Outcome() Outcome
	Hash() StateHash
	Equal(other State) bool
}

type Outcome int

const (
	Ongoing Outcome = iota
	MaximizerWins
	MinimizerWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case MaximizerWins:
		return "maximizer wins"
	case MinimizerWins:
		return "minimizer wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
