package experiments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"knucklebones/agent"
	"knucklebones/engine"
	"knucklebones/experiments/metrics"
	"knucklebones/game"
	"knucklebones/meta"
	"knucklebones/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrNoGames = errors.New("number of games must be positive")

type Setup struct {
	Name       string
	Strategies []string // Catalog keys, every ordered pair plays a matchup
	NumGames   int      // Per matchup
	Workers    int
	Seed       uint64
	OutDir     string // Nothing is written when empty
	Moves      bool   // Also record every placement
}

type Result struct {
	Matchups []metrics.MatchupRecord
	Games    []metrics.GameRecord
	Moves    []metrics.MoveRecord
	Dir      string // Output directory, if any
}

type matchup struct {
	player1 string
	player2 string
}

type task struct {
	id      int // Index into the game records
	matchup int
	seed    uint64
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveMetric
}

// Pairings returns every ordered pair of keys, self-pairings included.
func Pairings(keys []string) [][2]string {
	pairs := make([][2]string, 0, len(keys)*len(keys))
	for _, k1 := range keys {
		for _, k2 := range keys {
			pairs = append(pairs, [2]string{k1, k2})
		}
	}
	return pairs
}

// Run plays NumGames games for every matchup on a pool of workers. Each game
// draws its own seed from the master seed in a fixed order, so the results do
// not depend on the number of workers. Cancelling ctx stops scheduling new
// games and returns ctx's error.
func Run(ctx context.Context, setup Setup) (Result, error) {
	if setup.NumGames <= 0 {
		return Result{}, ErrNoGames
	}
	if setup.Workers <= 0 {
		setup.Workers = meta.WORKERS
	}
	if len(setup.Strategies) == 0 {
		setup.Strategies = strategy.Keys()
	}
	if setup.Name == "" {
		setup.Name = "matchups"
	}
	for _, key := range setup.Strategies {
		if _, err := strategy.Lookup(key); err != nil {
			return Result{}, err
		}
	}

	matchups := []matchup{}
	for _, pair := range Pairings(setup.Strategies) {
		matchups = append(matchups, matchup{player1: pair[0], player2: pair[1]})
	}

	master := rand.New(rand.NewSource(setup.Seed))
	tasks := make([]task, 0, len(matchups)*setup.NumGames)
	for mi := range matchups {
		for i := 0; i < setup.NumGames; i++ {
			tasks = append(tasks, task{id: len(tasks), matchup: mi, seed: master.Uint64()})
		}
	}

	log.Info().Msgf("starting %s experiment with %d matchups of %d games on %d workers...",
		setup.Name, len(matchups), setup.NumGames, setup.Workers)
	startTime := time.Now()

	outcomes, err := runTasks(ctx, matchups, tasks, setup.Workers, setup.Moves)
	if err != nil {
		return Result{}, err
	}
	endTime := time.Now()

	result := Result{Matchups: make([]metrics.MatchupRecord, len(matchups))}
	for mi, m := range matchups {
		result.Matchups[mi] = metrics.MatchupRecord{Player1: m.player1, Player2: m.player2}
	}
	for _, o := range outcomes {
		result.Games = append(result.Games, o.game)
		for _, mm := range o.moves {
			result.Moves = append(result.Moves, metrics.MoveRecord{Game: o.game.ID, MoveMetric: mm})
		}
	}
	for i, t := range tasks {
		tally(&result.Matchups[t.matchup], outcomes[i].game.Winner)
	}
	for mi := range result.Matchups {
		m := &result.Matchups[mi]
		m.WinRate = WinRate(m.P1Wins, m.Games, m.Ties)
		log.Info().Msgf("%s vs %s: %d wins, %d losses, %d ties, win rate %.3f",
			m.Player1, m.Player2, m.P1Wins, m.P1Losses, m.Ties, m.WinRate)
	}

	log.Info().Msgf("completed %s experiment in %s", setup.Name, endTime.Sub(startTime))

	if setup.OutDir == "" {
		return result, nil
	}

	writer, err := metrics.NewWriter(setup.OutDir, setup.Name)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	err = writer.WriteSetup(metrics.Setup{
		Strategies: setup.Strategies,
		NumGames:   setup.NumGames,
		Workers:    setup.Workers,
		Seed:       setup.Seed,
		Moves:      setup.Moves,
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(startTime),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to store setup: %w", err)
	}

	if err := writer.WriteMatchupRecords(result.Matchups); err != nil {
		return Result{}, fmt.Errorf("failed to write matchup records: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return Result{}, fmt.Errorf("failed to write game records: %w", err)
	}
	if setup.Moves {
		if err := writer.WriteMoveRecords(result.Moves); err != nil {
			return Result{}, fmt.Errorf("failed to write move records: %w", err)
		}
	}
	log.Info().Msgf("stored results in %s", result.Dir)

	return result, nil
}

// WinRate is wins over decided games. A matchup where every game tied counts
// as even.
func WinRate(wins, games, ties int) float64 {
	decided := games - ties
	if decided <= 0 {
		return 0.5
	}
	return float64(wins) / float64(decided)
}

func tally(m *metrics.MatchupRecord, winner int) {
	m.Games++
	switch winner {
	case 0:
		m.P1Wins++
	case 1:
		m.P1Losses++
	case game.Tie:
		m.Ties++
	}
}

func runTasks(ctx context.Context, matchups []matchup, tasks []task, workers int, moves bool) ([]outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make([]outcome, len(tasks))
	queue := make(chan task, workers)

	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				o, err := play(matchups[t.matchup], t, moves)
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				outcomes[t.id] = o
			}
		}()
	}

	scheduled := 0
schedule:
	for _, t := range tasks {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break schedule
		case queue <- t:
			scheduled++
		}
	}
	close(queue)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if scheduled < len(tasks) {
		return nil, ctx.Err()
	}
	return outcomes, nil
}

// play runs one game. Both agents and the dice get their own generators
// derived from the game's seed.
func play(m matchup, t task, moves bool) (outcome, error) {
	rng := rand.New(rand.NewSource(t.seed))
	agent1, err := strategy.New(m.player1, rand.New(rand.NewSource(rng.Uint64())))
	if err != nil {
		return outcome{}, err
	}
	agent2, err := strategy.New(m.player2, rand.New(rand.NewSource(rng.Uint64())))
	if err != nil {
		return outcome{}, err
	}

	collector := metrics.NewDummyCollector()
	if moves {
		collector = metrics.NewCollector()
	}
	e := engine.LocalEngine(
		[2]agent.Agent{agent1, agent2},
		engine.WithSeed(rng.Uint64()),
		engine.WithNames(m.player1, m.player2),
		engine.WithMetrics(collector),
	)

	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return outcome{}, fmt.Errorf("game %d (%s vs %s): %w", t.id+1, m.player1, m.player2, err)
	}

	return outcome{
		game: metrics.GameRecord{
			ID:         t.id + 1,
			Player1:    m.player1,
			Player2:    m.player2,
			Seed:       t.seed,
			GameMetric: gameMetric,
		},
		moves: moveMetrics,
	}, nil
}
