package chess

import notnil "github.com/notnil/chess"

// Move is a legal move of the position it was generated from
type Move struct {
	move *notnil.Move
}

// String returns the move in UCI notation
func (m Move) String() string {
	return m.move.String()
}

func (m Move) From() notnil.Square {
	return m.move.S1()
}

func (m Move) To() notnil.Square {
	return m.move.S2()
}
