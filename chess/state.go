package chess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gametree/game"

	"github.com/cespare/xxhash"
	notnil "github.com/notnil/chess"
	"github.com/samber/lo"
)

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
)

// fiftyMoveLimit is the half-move clock at which the game is drawn
const fiftyMoveLimit = 100

// State is a chess position with White as the maximizing side.
// The wrapped position is never mutated after construction.
type State struct {
	pos *notnil.Position
	win float64
}

type Option func(s *State)

func WithWinScore(win float64) Option {
	return func(s *State) {
		if win > 0 {
			s.win = win
		}
	}
}

// New returns the standard starting position
func New(options ...Option) *State {
	s := &State{
		pos: notnil.NewGame().Position(),
		win: game.DefaultWinScore,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func FromFEN(fen string, options ...Option) (*State, error) {
	pos, err := decode(fen)
	if err != nil {
		return nil, err
	}

	pieces := lo.Values(pos.Board().SquareMap())
	whiteKings := lo.Count(pieces, notnil.WhiteKing)
	blackKings := lo.Count(pieces, notnil.BlackKing)
	if whiteKings != 1 || blackKings != 1 {
		return nil, fmt.Errorf("%w: need one king per side, got %d white and %d black", ErrInvalidFEN, whiteKings, blackKings)
	}

	for sq, piece := range pos.Board().SquareMap() {
		if piece.Type() == notnil.Pawn && (sq.Rank() == notnil.Rank1 || sq.Rank() == notnil.Rank8) {
			return nil, fmt.Errorf("%w: pawn on %s", ErrInvalidFEN, sq)
		}
	}

	s := &State{pos: pos, win: game.DefaultWinScore}
	if s.waitingInCheck() {
		return nil, fmt.Errorf("%w: the side not to move is in check", ErrInvalidFEN)
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// waitingInCheck reports whether the side to move could capture the other king
func (s *State) waitingInCheck() bool {
	white, black := kingSquares(s.pos.Board().SquareMap())
	king := black
	if !s.Maximizing() {
		king = white
	}
	return attackers(s.pos.ValidMoves(), king) > 0
}

func decode(fen string) (*notnil.Position, error) {
	fenOption, err := notnil.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidFEN, fen, err)
	}
	return notnil.NewGame(fenOption).Position(), nil
}

// Apply plays a move given in UCI notation, e.g. "e2e4" or "e7e8q"
func (s *State) Apply(uci string) (*State, error) {
	for _, move := range s.pos.ValidMoves() {
		if move.String() == uci {
			return s.play(move), nil
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrIllegalMove, uci, s.FEN())
}

func (s *State) play(move *notnil.Move) *State {
	return &State{pos: s.pos.Update(move), win: s.win}
}

func (s *State) FEN() string {
	return s.pos.String()
}

func (s *State) String() string {
	return s.FEN()
}

func (s *State) Maximizing() bool {
	return s.pos.Turn() == notnil.White
}

func (s *State) IsTerminal() bool {
	return s.Outcome() != game.Ongoing
}

func (s *State) Successors() []game.Successor {
	moves := s.pos.ValidMoves()
	successors := make([]game.Successor, len(moves))
	for i, move := range moves {
		successors[i] = game.Successor{Move: Move{move: move}, State: s.play(move)}
	}
	return successors
}

func (s *State) Outcome() game.Outcome {
	switch s.pos.Status() {
	case notnil.Checkmate:
		if s.Maximizing() {
			return game.MinimizerWins
		}
		return game.MaximizerWins
	case notnil.Stalemate:
		return game.Draw
	}

	if s.halfMoveClock() >= fiftyMoveLimit || insufficientMaterial(s.pos.Board()) {
		return game.Draw
	}
	return game.Ongoing
}

func (s *State) Hash() game.StateHash {
	return game.StateHash(xxhash.Sum64String(s.FEN()))
}

func (s *State) Equal(other game.State) bool {
	o, ok := other.(*State)
	return ok && o.FEN() == s.FEN()
}

func (s *State) halfMoveClock() int {
	fields := strings.Fields(s.FEN())
	if len(fields) < 5 {
		return 0
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return clock
}

// flipped returns the same placement with the other side to move, used to look at the
// moves of the side that is waiting. En passant is cleared since it is only valid for the
// side that was to move.
func (s *State) flipped() *notnil.Position {
	fields := strings.Fields(s.FEN())
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"

	pos, err := decode(strings.Join(fields, " "))
	if err != nil {
		// Only the side and en passant fields differ from a position that already parsed
		panic(fmt.Sprintf("flipping %s: %v", s.FEN(), err))
	}
	return pos
}

// insufficientMaterial reports bare kings, a single minor piece against a bare king, or
// bishops only, all standing on squares of one colour
func insufficientMaterial(board *notnil.Board) bool {
	knights := 0
	bishopColours := map[int]bool{}
	for sq, piece := range board.SquareMap() {
		switch piece.Type() {
		case notnil.King:
		case notnil.Knight:
			knights++
		case notnil.Bishop:
			bishopColours[(int(sq.File())+int(sq.Rank()))%2] = true
		default:
			return false
		}
	}
	if knights+len(bishopColours) == 0 {
		return true
	}
	if knights == 1 {
		return len(bishopColours) == 0
	}
	return knights == 0 && len(bishopColours) == 1
}
