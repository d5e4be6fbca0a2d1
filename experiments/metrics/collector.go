package metrics

import (
	"time"
)

// SearchMetric describes one move decision: the configured iteration budget,
// how long the search took, and how many playouts ran to completion.
type SearchMetric struct {
	Iterations int
	Duration   time.Duration
	Playouts   int
}

// MoveMetric ties a SearchMetric to its position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes one search agent in an experiment. Policy is one of
// the policy names understood by the experiments package.
type AgentConfig struct {
	ID         int
	Iterations int
	Policy     string
	Weight     float64 // Bias strength for the center policies
}

// Collector gathers per-search counters. The search loop is sequential, so
// plain counters suffice.
type Collector interface {
	Start(iterations int)
	AddPlayout()
	Complete() SearchMetric
}

type collector struct {
	iterations int
	startTime  time.Time
	playouts   int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(iterations int) {
	c.startTime = time.Now()
	c.iterations = iterations
	c.playouts = 0
}

func (c *collector) AddPlayout() {
	c.playouts++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Iterations: c.iterations,
		Duration:   time.Since(c.startTime),
		Playouts:   c.playouts,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches that do not need
// metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(iterations int)   {}
func (dummyCollector) AddPlayout()            {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
