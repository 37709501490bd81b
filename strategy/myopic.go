package strategy

import (
	"knucklebones/agent"
	"knucklebones/game"
	"knucklebones/meta"
)

// Smart plays the column maximizing the score differential after the
// placement. Later columns win ties.
var Smart = NewMyopic(game.Differential, func(candidate, best int) bool { return candidate >= best })

// Stupid plays the column minimizing the score differential after the
// placement. Later columns win ties.
var Stupid = NewMyopic(game.Differential, func(candidate, best int) bool { return candidate <= best })

// NewMyopic returns a one-ply strategy: each open column is tried on a copy of
// the view and scored with evaluate; prefer decides whether a candidate
// replaces the running best.
func NewMyopic(evaluate game.Evaluate, prefer func(candidate, best int) bool) agent.Func {
	return func(die int, view game.Board, turn int) (int, error) {
		best := -1
		bestScore := 0
		for column := 0; column < meta.COLUMNS; column++ {
			sandbox := view.CloneFromPerspective(0)
			if !sandbox.Place(0, column, die) {
				continue
			}
			score := evaluate(sandbox)
			if best == -1 || prefer(score, bestScore) {
				best = column
				bestScore = score
			}
		}
		if best == -1 {
			return 0, ErrNoPlaceableColumn
		}
		return best, nil
	}
}
