package gamemaster

import (
	"errors"
	"testing"

	"knucklebones/engine"
	"knucklebones/game"
	"knucklebones/strategy"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fixed int

func (f fixed) Intn(n int) int { return int(f) % n }

type alternating struct {
	values []int
	i      int
}

func (a *alternating) Intn(n int) int {
	v := a.values[a.i%len(a.values)]
	a.i++
	return v % n
}

func TestLocalEngineInit(t *testing.T) {
	e := NewLocalEngine(WithDice(fixed(2)), WithCoin(fixed(1)))
	turn, getUpdate := e.Init()

	require.Equal(t, 1, turn.Side, "Coin should pick the starting side")
	require.Equal(t, 3, turn.Die)
	require.Equal(t, game.NewBoard(), turn.View)
	require.False(t, e.Over())

	_, ok := getUpdate()
	require.False(t, ok, "No update should exist before a move")
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	e := NewLocalEngine(WithDice(fixed(4)), WithStartingSide(0))
	turn, getUpdate := e.Init()

	next, err := e.Play(1)

	require.NoError(t, err)
	require.Equal(t, 1, next.Side, "Turn should pass to the other side")
	require.Equal(t, []int{5}, next.View.Column(1, 1).Dice(), "Next view should show the placed die as the opponent's")

	u, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, game.Placement{Side: turn.Side, Column: 1, Die: 5}, u.Placement)
	require.Equal(t, []int{5}, u.Board.Column(0, 1).Dice())

	_, ok = getUpdate()
	require.False(t, ok, "Update should be consumed")
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	e := NewLocalEngine(WithDice(fixed(0)), WithStartingSide(0))
	turn, _ := e.Init()

	got, err := e.Play(5)

	var illegal *engine.IllegalMoveError
	require.True(t, errors.As(err, &illegal))
	require.ErrorIs(t, err, game.ErrColumnOutOfRange)
	require.Equal(t, turn, got, "Turn should stay pending")
	require.Equal(t, turn, e.Current())

	_, err = e.Play(0)
	require.NoError(t, err, "Caller should be able to retry")
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	// Side 0 always rolls 1 and side 1 always rolls 2, so nothing is eliminated.
	e := NewLocalEngine(WithDice(&alternating{values: []int{0, 1}}), WithStartingSide(0))
	turn, getUpdate := e.Init()

	moves := 0
	for !e.Over() {
		column, err := strategy.Sequential(turn.Die, turn.View, turn.Side)
		require.NoError(t, err)
		turn, err = e.Play(column)
		require.NoError(t, err)
		moves++
	}

	require.Equal(t, 17, moves, "Side 0 should fill up on its ninth die")
	require.Equal(t, [2]int{27, 44}, e.Scores())

	count := 0
	for {
		if _, ok := getUpdate(); !ok {
			break
		}
		count++
	}
	require.Equal(t, moves, count, "Every placement should produce an update")

	_, err := e.Play(0)
	require.ErrorIs(t, err, engine.ErrGameOver)
}

func TestLocalEngine_FullGame(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := NewLocalEngine(WithDice(rng), WithCoin(rng))
	turn, _ := e.Init()
	random := strategy.NewRandom(rand.New(rand.NewSource(4)))

	for !e.Over() {
		column, err := random(turn.Die, turn.View, turn.Side)
		require.NoError(t, err)
		turn, err = e.Play(column)
		require.NoError(t, err)
	}

	require.Equal(t, -1, turn.Side)
	require.True(t, turn.View.IsTerminal())
	require.Equal(t, [2]int{turn.View.Score(0), turn.View.Score(1)}, e.Scores())
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	turn1, _ := NewLocalEngine(WithDice(fixed(5)), WithStartingSide(1)).Init()
	turn2, _ := NewLocalEngine(WithDice(fixed(5)), WithStartingSide(1)).Init()

	require.Equal(t, turn1, turn2)
}
