package metrics

import (
	"time"

	"knucklebones/game"
)

type MoveMetric struct {
	Step int
	game.Placement
	Advantage float64       // Normalized score lead of the mover after the placement
	Duration  time.Duration // Time the agent took to decide
}

type GameMetric struct {
	StartingSide int
	Scores       [2]int
	Winner       int // Side, or game.Tie
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	Start()
	AddMove(MoveMetric)
	Complete() []MoveMetric
}

type collector struct {
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.moves = nil
}

func (m *collector) AddMove(move MoveMetric) {
	m.moves = append(m.moves, move)
}

func (m *collector) Complete() []MoveMetric {
	return m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddMove(MoveMetric)     {}
func (m *dummyCollector) Complete() []MoveMetric { return nil }
