package searcher

import (
	"fmt"
	"tictac/experiments/metrics"
	"tictac/game"

	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS runs Monte Carlo Tree Search over a fixed iteration budget. A fresh
// tree is built for every decision and discarded afterwards. Iterations
// within one decision run sequentially: each iteration's selection depends on
// the statistics of the previous ones, and a seeded sequential search is what
// makes full games reproducible.
type MCTS struct {
	iterations int
	cSquared   float64
	policy     Policy
	rng        *rand.Rand
	root       *decision
	metrics    metrics.Collector
}

// WithExploration overrides the squared exploration constant of the UCB
// formula.
func WithExploration(cSquared float64) Option {
	return func(m *MCTS) {
		if cSquared > 0 {
			m.cSquared = cSquared
		}
	}
}

// WithPolicy sets the rollout policy, used both to order expansions and to
// drive playouts.
func WithPolicy(policy Policy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.policy = policy
		}
	}
}

// WithSeed seeds the search's private random source. Searches with the same
// seed, budget and policy produce identical decisions.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMCTS returns a search agent with the given iteration budget. The budget
// must be positive; a bad budget is a configuration error and is rejected
// before any simulation runs.
func NewMCTS(iterations int, options ...Option) (*MCTS, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iteration budget must be positive, got %d", iterations)
	}

	m := &MCTS{ // Default values
		iterations: iterations,
		cSquared:   CSquared,
		policy:     NewUniformPolicy(),
		rng:        rand.New(rand.NewSource(1)),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m, nil
}

// FindMove builds a search tree from state by running the configured number
// of iterations, then commits to the root's most visited move.
func (m *MCTS) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	m.root = newDecision(nil, state)
	if len(m.root.unexplored) == 0 {
		panic("cannot search a terminal state")
	}

	m.metrics.Start(m.iterations)
	for i := 0; i < m.iterations; i++ {
		m.simulate(state)
	}
	metric := m.metrics.Complete()

	return m.root.mostVisited(), metric
}

// simulate runs one iteration: selection and expansion down the tree, a
// rollout from the new leaf, and a backup of the outcome along the path.
func (m *MCTS) simulate(state game.State) {
	newNode, newState := m.selectThenExpand(state)
	winner := m.rollout(newState)
	backup(newNode, winner)
}

func (m *MCTS) selectThenExpand(state game.State) (*decision, game.State) {
	parent := m.root
	child, state, added := parent.selectOrExpand(state, m.policy, m.rng, m.cSquared)
	for child != parent && !added {
		parent = child
		child, state, added = parent.selectOrExpand(state, m.policy, m.rng, m.cSquared)
	}
	return child, state
}

func (m *MCTS) rollout(state game.State) string {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		move := m.policy.Pick(state, moves, m.rng)
		state = state.Play(move)
		moves = state.LegalMoves()
	}
	m.metrics.AddPlayout()
	return state.Winner()
}

func backup(newNode *decision, winner string) {
	node := newNode
	for node != nil {
		node = node.backup(winner)
	}
}
