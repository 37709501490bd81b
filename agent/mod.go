package agent

import "knucklebones/game"

// Agent chooses the column for a rolled die. The view is a copy of the board
// oriented so that side 0 is the agent's own side; turn is the agent's actual
// side on the live board.
type Agent interface {
	Decide(die int, view game.Board, turn int) (column int, err error)
}

// Func adapts a plain decision function to the Agent interface.
type Func func(die int, view game.Board, turn int) (int, error)

func (f Func) Decide(die int, view game.Board, turn int) (int, error) {
	return f(die, view, turn)
}
