package strategy

import (
	"knucklebones/agent"
	"knucklebones/game"

	"golang.org/x/exp/rand"
)

// NewRandom returns a strategy choosing uniformly among the open columns.
func NewRandom(rng *rand.Rand) agent.Func {
	return func(die int, view game.Board, turn int) (int, error) {
		valid := view.ValidColumns(0)
		if len(valid) == 0 {
			return 0, ErrNoPlaceableColumn
		}
		return valid[rng.Intn(len(valid))], nil
	}
}
