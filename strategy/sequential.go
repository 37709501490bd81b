package strategy

import "knucklebones/game"

// Sequential plays the lowest-indexed open column.
func Sequential(die int, view game.Board, turn int) (int, error) {
	return firstAvailable(view)
}
