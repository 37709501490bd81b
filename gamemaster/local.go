package gamemaster

import (
	"time"

	"knucklebones/engine"
	"knucklebones/game"
	"knucklebones/meta"

	"golang.org/x/exp/rand"
)

// Turn is the pending decision: Side must place Die. View is oriented so that
// side 0 is the mover's side.
type Turn struct {
	Side int
	Die  int
	View game.Board
}

// Update is an applied placement and the board right after it.
type Update struct {
	Placement game.Placement
	Board     game.Board
}

// UpdateGetter returns the oldest unread update, or false when there is none.
type UpdateGetter func() (Update, bool)

type Engine interface {
	Init() (Turn, UpdateGetter)
	Play(column int) (Turn, error)
}

type Option func(e *localEngine)

func WithDice(dice engine.Source) Option {
	return func(e *localEngine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithCoin(coin engine.Source) Option {
	return func(e *localEngine) {
		if coin != nil {
			e.coin = coin
		}
	}
}

func WithStartingSide(side int) Option {
	return func(e *localEngine) {
		if side == 0 || side == 1 {
			e.start = side
		}
	}
}

type localEngine struct {
	board    game.Board
	dice     engine.Source
	coin     engine.Source
	start    int
	turn     Turn
	pending  []Update
	gameOver bool
}

func NewLocalEngine(options ...Option) *localEngine {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	e := &localEngine{
		dice:  rng,
		coin:  rng,
		start: -1,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Init starts a new game and returns the first turn.
func (e *localEngine) Init() (Turn, UpdateGetter) {
	e.board = game.NewBoard()
	e.pending = nil
	e.gameOver = false

	side := e.start
	if side < 0 {
		side = e.coin.Intn(meta.SIDES)
	}
	e.roll(side)

	return e.turn, func() (Update, bool) {
		if len(e.pending) == 0 {
			return Update{}, false
		}
		u := e.pending[0]
		e.pending = e.pending[1:]
		return u, true
	}
}

// Play places the pending die in column. An illegal column leaves the game
// unchanged and returns an *engine.IllegalMoveError so the caller can ask
// again.
func (e *localEngine) Play(column int) (Turn, error) {
	if e.gameOver {
		return Turn{}, engine.ErrGameOver
	}

	placement, err := e.board.TryPlace(e.turn.Side, column, e.turn.Die)
	if err != nil {
		return e.turn, &engine.IllegalMoveError{
			Player: playerName(e.turn.Side),
			Side:   e.turn.Side,
			Die:    e.turn.Die,
			Column: column,
			Err:    err,
		}
	}
	e.pending = append(e.pending, Update{Placement: placement, Board: e.board})

	if e.board.IsTerminal() {
		e.gameOver = true
		e.turn = Turn{Side: -1, View: e.board}
		return e.turn, nil
	}

	e.roll(game.Other(e.turn.Side))
	return e.turn, nil
}

// Current returns the pending turn.
func (e *localEngine) Current() Turn {
	return e.turn
}

func (e *localEngine) Over() bool {
	return e.gameOver
}

func (e *localEngine) Scores() [2]int {
	return [2]int{e.board.Score(0), e.board.Score(1)}
}

func (e *localEngine) roll(side int) {
	e.turn = Turn{
		Side: side,
		Die:  e.dice.Intn(meta.FACES) + 1,
		View: e.board.CloneFromPerspective(side),
	}
}

func playerName(side int) string {
	if side == 0 {
		return "Player 0"
	}
	return "Player 1"
}

var _ Engine = (*localEngine)(nil)
