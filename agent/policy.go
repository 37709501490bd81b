package agent

import (
	"errors"
	"fmt"
	"math"

	"knucklebones/game"
	"knucklebones/meta"

	"golang.org/x/exp/rand"
)

var (
	ErrNoValidColumn = errors.New("policy has no valid column")
	ErrPolicyShape   = errors.New("policy returned wrong number of preferences")
)

// Policy maps an observation to one preference per column, e.g. the output
// of a learned model.
type Policy func(game.Observation) []float64

type evaluationPolicy struct {
	policy Policy
}

// NewEvaluationPolicy returns an agent that plays the valid column with the
// highest preference.
func NewEvaluationPolicy(policy Policy) Agent {
	return evaluationPolicy{policy: policy}
}

func (a evaluationPolicy) Decide(die int, view game.Board, turn int) (int, error) {
	obs := view.Observation(0)
	prefs, err := preferences(a.policy, obs)
	if err != nil {
		return 0, err
	}
	return findMax(prefs, obs.ActionMask)
}

type trainingPolicy struct {
	policy      Policy
	temperature float64
	rng         *rand.Rand
}

// NewTrainingPolicy returns an agent that samples a valid column in
// proportion to its temperature-adjusted preference. Preferences must be
// non-negative.
func NewTrainingPolicy(policy Policy, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return trainingPolicy{policy: policy, temperature: temperature, rng: rng}
}

func (a trainingPolicy) Decide(die int, view game.Board, turn int) (int, error) {
	obs := view.Observation(0)
	prefs, err := preferences(a.policy, obs)
	if err != nil {
		return 0, err
	}
	adjusted, err := adjustTemperature(prefs, obs.ActionMask, a.temperature)
	if err != nil {
		return 0, err
	}
	return sample(adjusted, a.rng.Float64()), nil
}

func preferences(policy Policy, obs game.Observation) ([]float64, error) {
	prefs := policy(obs)
	if len(prefs) != meta.COLUMNS {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPolicyShape, len(prefs), meta.COLUMNS)
	}
	return prefs, nil
}

func findMax(prefs []float64, mask [meta.COLUMNS]bool) (int, error) {
	best := -1
	maxPref := math.Inf(-1)
	for column, pref := range prefs {
		if !mask[column] {
			continue
		}
		if best == -1 || pref > maxPref {
			best = column
			maxPref = pref
		}
	}
	if best == -1 {
		return 0, ErrNoValidColumn
	}
	return best, nil
}

// adjustTemperature masks full columns and normalizes pref^(1/temperature)
// into a probability distribution.
func adjustTemperature(prefs []float64, mask [meta.COLUMNS]bool, temperature float64) ([]float64, error) {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(prefs))
	for column, pref := range prefs {
		if pref < 0 {
			return nil, fmt.Errorf("negative preference %f for column %d", pref, column)
		}
		if !mask[column] {
			continue
		}
		prob := math.Pow(pref, exponent)
		sum += prob
		adjusted[column] = prob
	}
	if sum == 0 {
		return nil, ErrNoValidColumn
	}
	// Normalize
	for column := range adjusted {
		adjusted[column] /= sum
	}
	return adjusted, nil
}

// sample picks the column whose cumulative probability first exceeds sampled.
func sample(policy []float64, sampled float64) int {
	cumulative := 0.0
	last := -1
	for column, prob := range policy {
		if prob == 0 {
			continue
		}
		last = column
		cumulative += prob
		if sampled < cumulative {
			return column
		}
	}
	return last // Fallback in case of rounding errors
}
