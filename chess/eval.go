package chess

import (
	"gametree/game"

	notnil "github.com/notnil/chess"
	"github.com/samber/lo"
)

var pieceValues = map[notnil.PieceType]float64{
	notnil.Pawn:   1,
	notnil.Knight: 3,
	notnil.Bishop: 3,
	notnil.Rook:   5,
	notnil.Queen:  9,
}

var centre = []notnil.Square{notnil.D4, notnil.E4, notnil.D5, notnil.E5}

const (
	centreBonus    = 0.2
	mobilityWeight = 0.05
	attackerWeight = 0.5
)

// Evaluate scores the position for White. Finished games score ±win or zero, everything
// else is material, centre occupancy, mobility and king safety, kept strictly below a win.
func (s *State) Evaluate() float64 {
	if outcome := s.Outcome(); outcome != game.Ongoing {
		return game.Terminal(outcome, s.win)
	}

	board := s.pos.Board()
	squares := board.SquareMap()

	score := 0.0
	for _, piece := range squares {
		score += sign(piece.Color()) * pieceValues[piece.Type()]
	}
	for _, sq := range centre {
		if piece, ok := squares[sq]; ok {
			score += sign(piece.Color()) * centreBonus
		}
	}

	toMove := s.pos.ValidMoves()
	waiting := s.flipped().ValidMoves()
	white, black := toMove, waiting
	if !s.Maximizing() {
		white, black = waiting, toMove
	}
	score += mobilityWeight * float64(len(white)-len(black))

	whiteKing, blackKing := kingSquares(squares)
	score -= attackerWeight * float64(attackers(black, whiteKing))
	score += attackerWeight * float64(attackers(white, blackKing))

	return game.Bound(score, s.win)
}

func sign(color notnil.Color) float64 {
	if color == notnil.White {
		return 1
	}
	return -1
}

func kingSquares(squares map[notnil.Square]notnil.Piece) (white, black notnil.Square) {
	for sq, piece := range squares {
		switch piece {
		case notnil.WhiteKing:
			white = sq
		case notnil.BlackKing:
			black = sq
		}
	}
	return white, black
}

// attackers counts the distinct pieces among moves able to land on the king's square
func attackers(moves []*notnil.Move, king notnil.Square) int {
	targeting := lo.Filter(moves, func(m *notnil.Move, _ int) bool {
		return m.S2() == king
	})
	return len(lo.Uniq(lo.Map(targeting, func(m *notnil.Move, _ int) notnil.Square {
		return m.S1()
	})))
}
