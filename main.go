package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"knucklebones/agent"
	"knucklebones/config"
	"knucklebones/engine"
	"knucklebones/experiments"
	"knucklebones/game"
	"knucklebones/gamemaster"
	"knucklebones/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	mode := flag.String("mode", cfg.Mode, "play, stats or throughput")
	p0 := flag.String("p0", cfg.Player0, "Strategy for player 0 in play mode")
	p1 := flag.String("p1", cfg.Player1, "Strategy for player 1 in play mode")
	strategies := flag.String("strategies", strings.Join(cfg.Strategies, ","), "Comma separated strategies for stats mode, all when empty")
	games := flag.Int("games", cfg.Games, "Games per matchup")
	workers := flag.Int("workers", cfg.Workers, "Number of goroutines playing games")
	seed := flag.Uint64("seed", cfg.Seed, "Master seed, 0 seeds from the clock")
	out := flag.String("out", cfg.OutDir, "Directory for experiment results, empty to skip writing")
	moves := flag.Bool("moves", cfg.Moves, "Record every placement in stats mode")
	human := flag.Bool("human", false, "Play as player 0 from standard input")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	cfg.LogLevel = *logLevel
	if err := setupLogging(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = playGame(*p0, *p1, *human, *seed)
	case "stats":
		_, err = experiments.Run(ctx, experiments.Setup{
			Name:       "matchups",
			Strategies: splitKeys(*strategies),
			NumGames:   *games,
			Workers:    *workers,
			Seed:       *seed,
			OutDir:     *out,
			Moves:      *moves,
		})
	case "throughput":
		_, err = experiments.RunThroughputExperiment(ctx, []int{1, 2, 4, 8, 16}, *games, *seed)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("knucklebones failed")
	}
}

func setupLogging(cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	if cfg.PrettyLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}

func splitKeys(s string) []string {
	keys := []string{}
	for _, key := range strings.Split(s, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// playGame runs one game through the game master and narrates it.
func playGame(key0, key1 string, human bool, seed uint64) error {
	rng := rand.New(rand.NewSource(seed))

	var agents [2]agent.Agent
	var names [2]string
	if human {
		agents[0] = agent.NewHuman("Player 0", os.Stdin, os.Stdout)
		names[0] = "You"
	} else {
		entry, err := strategy.Lookup(key0)
		if err != nil {
			return err
		}
		agents[0] = entry.New(rand.New(rand.NewSource(rng.Uint64())))
		names[0] = fmt.Sprintf("%s (%s)", entry.Name, entry.Adjective)
	}
	entry, err := strategy.Lookup(key1)
	if err != nil {
		return err
	}
	agents[1] = entry.New(rand.New(rand.NewSource(rng.Uint64())))
	names[1] = fmt.Sprintf("%s (%s)", entry.Name, entry.Adjective)

	gm := gamemaster.NewLocalEngine(gamemaster.WithDice(rng), gamemaster.WithCoin(rng))
	turn, getUpdate := gm.Init()

	fmt.Printf("%s vs %s\n", names[0], names[1])
	fmt.Printf("%s goes first\n", names[turn.Side])

	for !gm.Over() {
		column, err := agents[turn.Side].Decide(turn.Die, turn.View, turn.Side)
		if err != nil {
			return fmt.Errorf("%s failed to decide: %w", names[turn.Side], err)
		}

		next, err := gm.Play(column)
		var illegal *engine.IllegalMoveError
		if errors.As(err, &illegal) {
			log.Warn().Err(err).Msgf("%s made an illegal move", names[turn.Side])
			return err
		}
		if err != nil {
			return err
		}

		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			fmt.Printf("%s placed a %d in column %d", names[u.Placement.Side], u.Placement.Die, u.Placement.Column+1)
			if u.Placement.Removed > 0 {
				fmt.Printf(", knocking out %d", u.Placement.Removed)
			}
			fmt.Printf("\n%s\n", u.Board)
		}
		turn = next
	}

	scores := gm.Scores()
	fmt.Printf("Final score: %d to %d\n", scores[0], scores[1])
	switch winner := game.Winner(scores[0], scores[1]); winner {
	case game.Tie:
		fmt.Println("It's a tie!")
	default:
		fmt.Printf("%s wins!\n", names[winner])
	}
	return nil
}
