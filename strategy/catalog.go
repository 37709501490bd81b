package strategy

import (
	"fmt"

	"knucklebones/agent"

	"golang.org/x/exp/rand"
)

// Entry describes a catalog strategy.
type Entry struct {
	Key       string
	Name      string
	Adjective string
	New       func(rng *rand.Rand) agent.Agent
}

var Catalog = []Entry{
	{
		Key: "random", Name: "Random Player", Adjective: "Confused",
		New: func(rng *rand.Rand) agent.Agent { return NewRandom(rng) },
	},
	{
		Key: "sequential", Name: "Sequential Player", Adjective: "Methodical",
		New: func(*rand.Rand) agent.Agent { return agent.Func(Sequential) },
	},
	{
		Key: "aggressive", Name: "Aggressive Player", Adjective: "Aggressive",
		New: func(*rand.Rand) agent.Agent { return agent.Func(Aggressive) },
	},
	{
		Key: "smart", Name: "Smart Player", Adjective: "Smart",
		New: func(*rand.Rand) agent.Agent { return Smart },
	},
	{
		Key: "stupid", Name: "Stupid Player", Adjective: "Slow",
		New: func(*rand.Rand) agent.Agent { return Stupid },
	},
	{
		Key: "combo", Name: "Combo Player", Adjective: "Gambler",
		New: func(*rand.Rand) agent.Agent { return agent.Func(Combo) },
	},
	{
		Key: "pupser", Name: "Der Pupser", Adjective: "Stinky",
		New: func(*rand.Rand) agent.Agent { return NewPupser(nil) },
	},
}

// Lookup returns the catalog entry for key.
func Lookup(key string) (Entry, error) {
	for _, e := range Catalog {
		if e.Key == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown strategy %q", key)
}

// New constructs the strategy registered under key. rng is only used by
// strategies that randomize.
func New(key string, rng *rand.Rand) (agent.Agent, error) {
	e, err := Lookup(key)
	if err != nil {
		return nil, err
	}
	return e.New(rng), nil
}

// Keys lists the catalog keys in catalog order.
func Keys() []string {
	keys := make([]string, len(Catalog))
	for i, e := range Catalog {
		keys[i] = e.Key
	}
	return keys
}
