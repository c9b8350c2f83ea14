package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"gametree/game"
	"gametree/utils"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

const (
	Left  = 'L'
	Right = 'R'
	Blank = '_'

	// Start and Goal are the classic three-a-side crossing
	Start = "LLL_RRR"
	Goal  = "RRR_LLL"
)

var ErrInvalidLine = errors.New("invalid rabbit line")

// offsets are tried in this order, which fixes successor order
var offsets = []int{-1, 1, -2, 2}

// State is a line of rabbits with a single gap. It is a one-player puzzle, so the
// solver is always the maximizing side.
type State struct {
	line []byte
	goal string
	win  float64
}

type Option func(s *State)

func WithWinScore(win float64) Option {
	return func(s *State) {
		if win > 0 {
			s.win = win
		}
	}
}

func New(line, goal string, options ...Option) (*State, error) {
	if err := validate(line); err != nil {
		return nil, err
	}
	if err := validate(goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	if len(line) != len(goal) {
		return nil, fmt.Errorf("%w: %q and goal %q differ in length", ErrInvalidLine, line, goal)
	}
	for _, piece := range []rune{Left, Right} {
		if strings.Count(line, string(piece)) != strings.Count(goal, string(piece)) {
			return nil, fmt.Errorf("%w: %q and goal %q hold different rabbits", ErrInvalidLine, line, goal)
		}
	}

	s := &State{line: []byte(line), goal: goal, win: game.DefaultWinScore}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

func validate(line string) error {
	if strings.Trim(line, string([]rune{Left, Right, Blank})) != "" {
		return fmt.Errorf("%w: %q may only hold %c, %c and %c", ErrInvalidLine, line, Left, Right, Blank)
	}
	if blanks := strings.Count(line, string(Blank)); blanks != 1 {
		return fmt.Errorf("%w: %q has %d blanks", ErrInvalidLine, line, blanks)
	}
	return nil
}

func (s *State) Line() string {
	return string(s.line)
}

func (s *State) String() string {
	return s.Line()
}

func (s *State) Maximizing() bool {
	return true
}

func (s *State) Solved() bool {
	return string(s.line) == s.goal
}

func (s *State) IsTerminal() bool {
	return s.Outcome() != game.Ongoing
}

// Successors slides a rabbit into the gap: an L from its left or an R from its right,
// either adjacent or jumping over one rabbit
func (s *State) Successors() []game.Successor {
	blank := utils.FindIndex(s.line, Blank)
	successors := []game.Successor{}
	for _, offset := range offsets {
		target := blank + offset
		if target < 0 || target >= len(s.line) || !s.canSlide(blank, offset) {
			continue
		}

		line := make([]byte, len(s.line))
		copy(line, s.line)
		line[blank], line[target] = line[target], line[blank]

		successors = append(successors, game.Successor{
			Move:  Move{Rabbit: s.line[target], From: target, To: blank},
			State: &State{line: line, goal: s.goal, win: s.win},
		})
	}
	return successors
}

func (s *State) canSlide(blank, offset int) bool {
	target := s.line[blank+offset]
	switch offset {
	case -1:
		return target == Left
	case 1:
		return target == Right
	case -2:
		return target == Left && s.line[blank-1] != Blank
	case 2:
		return target == Right && s.line[blank+1] != Blank
	}
	return false
}

func (s *State) Outcome() game.Outcome {
	if s.Solved() {
		return game.MaximizerWins
	}
	if len(s.Successors()) == 0 {
		return game.MinimizerWins
	}
	return game.Ongoing
}

// Evaluate scores a solved line as a win and a stuck line as a loss. Anything in between
// is the balance of rabbits already on their goal cell against those still misplaced.
func (s *State) Evaluate() float64 {
	if outcome := s.Outcome(); outcome != game.Ongoing {
		return game.Terminal(outcome, s.win)
	}

	placed := lo.CountBy(lo.Range(len(s.line)), func(i int) bool {
		return s.line[i] != Blank && s.line[i] == s.goal[i]
	})
	misplaced := lo.CountBy(lo.Range(len(s.line)), func(i int) bool {
		return s.line[i] != Blank && s.line[i] != s.goal[i]
	})
	return game.Bound(game.Balance(float64(placed), float64(misplaced), float64(len(s.line))), s.win)
}

func (s *State) Hash() game.StateHash {
	return game.StateHash(xxhash.Sum64(s.line))
}

func (s *State) Equal(other game.State) bool {
	o, ok := other.(*State)
	return ok && string(o.line) == string(s.line) && o.goal == s.goal
}

// Move slides Rabbit from cell From into the gap at cell To
type Move struct {
	Rabbit byte
	From   int
	To     int
}

func (m Move) String() string {
	return fmt.Sprintf("%c %d->%d", m.Rabbit, m.From, m.To)
}
