package strategy

import "knucklebones/game"

// Combo plays the lowest-indexed open column already holding the die, falling
// back to the lowest-indexed open column.
func Combo(die int, view game.Board, turn int) (int, error) {
	for column, c := range view.Side(0) {
		if !c.Full() && c.Contains(die) {
			return column, nil
		}
	}
	return firstAvailable(view)
}
