package strategy

import (
	"math"

	"knucklebones/agent"
	"knucklebones/game"
	"knucklebones/meta"
)

// Tally counts which branch Pupser decisions took. A nil Tally records nothing.
type Tally struct {
	Eliminations int
	Fallbacks    int
}

func (t *Tally) elimination() {
	if t != nil {
		t.Eliminations++
	}
}

func (t *Tally) fallback() {
	if t != nil {
		t.Fallbacks++
	}
}

// NewPupser returns the heuristic scorer. It only considers columns where the
// die eliminates opponent dice and rates each one by the points removed plus
// the points built, minus the points the opponent is expected to take back
// from that column before the game ends. Without an elimination it plays like
// Sequential.
func NewPupser(tally *Tally) agent.Func {
	return func(die int, view game.Board, turn int) (int, error) {
		mine, theirs := view.Side(0), view.Side(1)

		best := -1
		bestPoints := math.Inf(-1)
		for column := range theirs {
			own, opp := mine[column], theirs[column]
			if !opp.Contains(die) || own.Full() {
				continue
			}

			points := float64(square(opp.Count(die))*die + square(own.Count(die)+1)*die)

			// Our placement frees the eliminated slots for the opponent.
			remaining := meta.SLOTS - theirs.Len() + opp.Count(die)
			prob := retaliationChance(remaining)
			for face := 1; face <= meta.FACES; face++ {
				if n := own.Count(face); n > 0 {
					points -= prob * float64(face*square(n))
				}
			}

			if points > bestPoints {
				best = column
				bestPoints = points
			}
		}

		if best == -1 {
			tally.fallback()
			return firstAvailable(view)
		}
		tally.elimination()
		return best, nil
	}
}

// retaliationChance is the probability that at least one of the opponent's
// remaining placements rolls a given face: the geometric distribution with
// p = 1/6 summed over the remaining placements.
func retaliationChance(remaining int) float64 {
	const p = 1.0 / meta.FACES
	prob := 0.0
	for k := 0; k < remaining; k++ {
		prob += p * math.Pow(1-p, float64(k))
	}
	return prob
}

func square(n int) int {
	return n * n
}
