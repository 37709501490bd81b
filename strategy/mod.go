// Package strategy holds the reference opponents. Every strategy decides from
// the rolled die and a board view in which side 0 is its own side, and keeps
// no state between calls.
package strategy

import (
	"errors"

	"knucklebones/game"
)

var ErrNoPlaceableColumn = errors.New("no placeable column")

// firstAvailable returns the lowest-indexed column of side 0 that is not full.
func firstAvailable(view game.Board) (int, error) {
	for column, c := range view.Side(0) {
		if !c.Full() {
			return column, nil
		}
	}
	return 0, ErrNoPlaceableColumn
}
