package strategy

import "knucklebones/game"

// Aggressive plays the open column that eliminates the most opponent dice,
// preferring the lowest index on ties. Without any elimination it plays like
// Sequential.
func Aggressive(die int, view game.Board, turn int) (int, error) {
	mine, theirs := view.Side(0), view.Side(1)
	best := 0
	mostRemoved := 0
	for column := range theirs {
		if mine[column].Full() {
			continue
		}
		if removed := theirs[column].Count(die); removed > mostRemoved {
			best = column
			mostRemoved = removed
		}
	}

	if mostRemoved == 0 {
		return firstAvailable(view)
	}
	return best, nil
}
