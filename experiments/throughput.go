package experiments

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Workers        int
	Games          int
	Duration       time.Duration
	GamesPerSecond float64
}

// RunThroughputExperiment plays the same random self-play batch once per
// worker count and reports how fast each finishes.
func RunThroughputExperiment(ctx context.Context, workerCounts []int, numGames int, seed uint64) ([]Throughput, error) {
	results := []Throughput{}

	log.Info().Msg("starting throughput experiment...")

	for _, workers := range workerCounts {
		setup := Setup{
			Name:       "throughput",
			Strategies: []string{"random"},
			NumGames:   numGames,
			Workers:    workers,
			Seed:       seed,
		}

		start := time.Now()
		if _, err := Run(ctx, setup); err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		t := Throughput{
			Workers:  workers,
			Games:    numGames,
			Duration: elapsed,
		}
		if elapsed > 0 {
			t.GamesPerSecond = float64(numGames) / elapsed.Seconds()
		}
		results = append(results, t)

		log.Info().Msgf("%d workers: %d games in %s (%.0f games/s)", workers, numGames, elapsed, t.GamesPerSecond)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
