package engine

import (
	"errors"
	"fmt"
)

// State of the turn loop.
type State int

const (
	AwaitingPlayer0 State = iota
	AwaitingPlayer1
	Done
)

var ErrGameOver = errors.New("game is over")

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

func awaiting(side int) State {
	if side == 0 {
		return AwaitingPlayer0
	}
	return AwaitingPlayer1
}

// Side returns the side to move, or -1 once the game is done.
func (s State) Side() int {
	switch s {
	case AwaitingPlayer0:
		return 0
	case AwaitingPlayer1:
		return 1
	default:
		return -1
	}
}

func (s State) String() string {
	switch s {
	case AwaitingPlayer0:
		return "awaiting player 0"
	case AwaitingPlayer1:
		return "awaiting player 1"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IllegalMoveError reports an agent choosing a column that cannot take the die.
type IllegalMoveError struct {
	Player string
	Side   int
	Die    int
	Column int
	Err    error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move by %s (side %d): column %d with die %d: %v", e.Player, e.Side, e.Column, e.Die, e.Err)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}
