package game

import "knucklebones/meta"

// Observation is the fixed-shape view handed to learned policies.
// Grid[s][c][k] is the k-th die placed in column c of side s (0 when empty);
// side 0 belongs to the observing player.
type Observation struct {
	Grid       [meta.SIDES][meta.COLUMNS][meta.CAPACITY]int
	ActionMask [meta.COLUMNS]bool
}

// Observation returns the board as seen by side.
func (b Board) Observation(side int) Observation {
	view := b.CloneFromPerspective(side)
	var obs Observation
	for s, columns := range view.sides {
		for c, column := range columns {
			obs.Grid[s][c] = column.dice
		}
	}
	for c, column := range view.sides[0] {
		obs.ActionMask[c] = !column.Full()
	}
	return obs
}
