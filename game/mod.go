package game

import (
	"errors"
	"fmt"

	"knucklebones/meta"
)

var (
	ErrColumnFull       = errors.New("column is full")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrInvalidDie       = errors.New("die value out of range")
	ErrInvalidSide      = errors.New("side out of range")
)

// Other returns the opposing side index.
func Other(side int) int {
	return 1 - side
}

// Evaluates a board to a score from side 0's perspective.
type Evaluate func(Board) int

func validDie(die int) bool {
	return die >= 1 && die <= meta.FACES
}

func validColumn(column int) bool {
	return column >= 0 && column < meta.COLUMNS
}

func validSide(side int) bool {
	return side >= 0 && side < meta.SIDES
}

func checkPlacement(side, column, die int) error {
	if !validSide(side) {
		return fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	if !validColumn(column) {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}
	if !validDie(die) {
		return fmt.Errorf("%w: %d", ErrInvalidDie, die)
	}
	return nil
}
