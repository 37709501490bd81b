package engine

import (
	"fmt"
	"time"

	"knucklebones/agent"
	"knucklebones/experiments/metrics"
	"knucklebones/game"
	"knucklebones/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Engine)

// WithDice sets the source of die rolls.
func WithDice(dice Source) Option {
	return func(e *Engine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

// WithCoin sets the source that picks the starting side.
func WithCoin(coin Source) Option {
	return func(e *Engine) {
		if coin != nil {
			e.coin = coin
		}
	}
}

// WithSeed draws both dice and starting side from a generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		rng := rand.New(rand.NewSource(seed))
		e.dice = rng
		e.coin = rng
	}
}

// WithStartingSide fixes the side that moves first.
func WithStartingSide(side int) Option {
	return func(e *Engine) {
		if side == 0 || side == 1 {
			e.start = side
		}
	}
}

func WithNames(name0, name1 string) Option {
	return func(e *Engine) {
		e.names = [2]string{name0, name1}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

type Engine struct {
	board   game.Board
	agents  [2]agent.Agent
	names   [2]string
	dice    Source
	coin    Source
	start   int // -1 picks a random side
	state   State
	metrics metrics.Collector
}

func LocalEngine(agents [2]agent.Agent, options ...Option) *Engine {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("agent %d is nil", i))
		}
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	e := &Engine{ // Default values
		board:   game.NewBoard(),
		agents:  agents,
		names:   [2]string{"Player 0", "Player 1"},
		dice:    rng,
		coin:    rng,
		start:   -1,
		state:   AwaitingPlayer0,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// RunGame plays a full game between two agents and returns the final scores.
func RunGame(agent0, agent1 agent.Agent, options ...Option) (int, int, error) {
	e := LocalEngine([2]agent.Agent{agent0, agent1}, options...)
	gameMetric, _, err := e.Run()
	if err != nil {
		return 0, 0, err
	}
	return gameMetric.Scores[0], gameMetric.Scores[1], nil
}

func (e *Engine) Board() game.Board {
	return e.board
}

func (e *Engine) State() State {
	return e.state
}

// Run executes the entire game loop until either side is full. An agent error
// or an illegal placement aborts the game.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	if e.state == Done {
		return metrics.GameMetric{}, nil, ErrGameOver
	}

	start := e.start
	if start < 0 {
		start = e.coin.Intn(meta.SIDES)
	}
	e.state = awaiting(start)
	e.metrics.Start()
	startTime := time.Now()

	log.Debug().Msgf("%s (side %d) is starting", e.names[start], start)

	step := 0
	for !e.board.IsTerminal() {
		side := e.state.Side()
		die := e.dice.Intn(meta.FACES) + 1

		begin := time.Now()
		column, err := e.agents[side].Decide(die, e.board.CloneFromPerspective(side), side)
		if err != nil {
			e.state = Done
			return metrics.GameMetric{}, nil, fmt.Errorf("%s (side %d) failed to decide on die %d: %w", e.names[side], side, die, err)
		}
		elapsed := time.Since(begin)

		placement, err := e.board.TryPlace(side, column, die)
		if err != nil {
			e.state = Done
			illegal := &IllegalMoveError{Player: e.names[side], Side: side, Die: die, Column: column, Err: err}
			log.Error().Err(err).Msgf("%s (side %d) chose column %d for die %d", e.names[side], side, column, die)
			return metrics.GameMetric{}, nil, illegal
		}
		step++
		e.metrics.AddMove(metrics.MoveMetric{
			Step:      step,
			Placement: placement,
			Advantage: game.Normalized(e.board.CloneFromPerspective(side)),
			Duration:  elapsed,
		})

		e.state = awaiting(game.Other(side))
	}
	e.state = Done

	endTime := time.Now()
	scores := [2]int{e.board.Score(0), e.board.Score(1)}
	gameMetric := metrics.GameMetric{
		StartingSide: start,
		Scores:       scores,
		Winner:       game.Winner(scores[0], scores[1]),
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     endTime.Sub(startTime),
		TotalMoves:   step,
	}

	log.Debug().Msgf("game over after %d moves: %d to %d", step, scores[0], scores[1])

	return gameMetric, e.metrics.Complete(), nil
}
