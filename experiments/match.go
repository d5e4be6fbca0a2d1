package experiments

import (
	"fmt"
	"math"
	"sync"
	"time"

	"tictac/engine"
	"tictac/experiments/metrics"
	"tictac/game"
	"tictac/searcher"

	"gonum.org/v1/gonum/stat"
)

// Policy names accepted in an AgentConfig.
const (
	PolicyUniform     = "uniform"
	PolicyCenter      = "center"
	PolicyAvoidCenter = "avoid-center"
)

// DefaultBiasWeight is the bias strength used when a config leaves Weight
// unset: the center square counts as four tickets against one per other
// legal move.
const DefaultBiasWeight = 4.0

// GameOutcome is one finished game of a match.
type GameOutcome struct {
	Game   int
	Winner int // Winning AgentConfig.ID, 0 for a draw
	Metric metrics.GameMetric
	Moves  []metrics.MoveMetric
}

// MatchResult tallies a match between two agents.
type MatchResult struct {
	Agent1   metrics.AgentConfig
	Agent2   metrics.AgentConfig
	Outcomes []GameOutcome
	Wins1    int
	Wins2    int
	Draws    int
	Duration time.Duration
	// Score1 is agent 1's mean score over the match (win 1, draw 0.5,
	// loss 0) with its standard error.
	Score1 float64
	StdErr float64
}

// RunMatch plays the given number of games between two configured agents.
// The first mover alternates between the agents by game parity so neither
// side banks the first-move advantage. Games are independent, so they run in
// parallel on the given number of workers; per-game seeds derive from
// baseSeed, making the whole match reproducible.
func RunMatch(config1, config2 metrics.AgentConfig, games, workers int, baseSeed uint64) (MatchResult, error) {
	if err := validateConfig(config1); err != nil {
		return MatchResult{}, fmt.Errorf("agent %d: %w", config1.ID, err)
	}
	if err := validateConfig(config2); err != nil {
		return MatchResult{}, fmt.Errorf("agent %d: %w", config2.ID, err)
	}
	// GameOutcome.Winner reserves 0 for draws
	if config1.ID <= 0 || config2.ID <= 0 || config1.ID == config2.ID {
		return MatchResult{}, fmt.Errorf("agent IDs must be positive and distinct, got %d and %d", config1.ID, config2.ID)
	}
	if games <= 0 {
		return MatchResult{}, fmt.Errorf("number of games must be positive, got %d", games)
	}
	if workers <= 0 {
		return MatchResult{}, fmt.Errorf("number of workers must be positive, got %d", workers)
	}

	start := time.Now()
	outcomes := make([]GameOutcome, games)

	task := make(chan int, games)
	for i := 0; i < games; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				outcomes[i] = playGame(i, config1, config2, baseSeed)
			}
		}()
	}
	wg.Wait()

	result := MatchResult{
		Agent1:   config1,
		Agent2:   config2,
		Outcomes: outcomes,
		Duration: time.Since(start),
	}

	scores := make([]float64, games)
	for i, outcome := range outcomes {
		switch outcome.Winner {
		case config1.ID:
			result.Wins1++
			scores[i] = 1
		case config2.ID:
			result.Wins2++
			scores[i] = 0
		default:
			result.Draws++
			scores[i] = 0.5
		}
	}
	result.Score1 = stat.Mean(scores, nil)
	result.StdErr = stat.StdDev(scores, nil) / math.Sqrt(float64(games))

	return result, nil
}

// playGame runs game i of a match. Even games start with agent 1, odd games
// with agent 2.
func playGame(i int, config1, config2 metrics.AgentConfig, baseSeed uint64) GameOutcome {
	first, second := config1, config2
	if i%2 == 1 {
		first, second = config2, config1
	}

	agentX := newAgent(first, baseSeed+uint64(2*i))
	agentO := newAgent(second, baseSeed+uint64(2*i)+1)

	e := engine.LocalEngine(agentX, agentO)
	winner, gameMetric, moveMetrics := e.Run(game.NewBoard())

	outcome := GameOutcome{
		Game:   i + 1,
		Metric: gameMetric,
		Moves:  moveMetrics,
	}
	switch winner {
	case game.PlayerX:
		outcome.Winner = first.ID
	case game.PlayerO:
		outcome.Winner = second.ID
	}
	return outcome
}

func newAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	policy, err := buildPolicy(config)
	if err != nil {
		panic(err) // Configs are validated before any game runs
	}

	m, err := searcher.NewMCTS(config.Iterations,
		searcher.WithPolicy(policy),
		searcher.WithSeed(seed),
		searcher.WithMetrics())
	if err != nil {
		panic(err)
	}
	return m
}

func validateConfig(config metrics.AgentConfig) error {
	if config.Iterations <= 0 {
		return fmt.Errorf("iteration budget must be positive, got %d", config.Iterations)
	}
	if config.Weight < 0 {
		return fmt.Errorf("policy weight must not be negative, got %v", config.Weight)
	}
	_, err := buildPolicy(config)
	return err
}

func buildPolicy(config metrics.AgentConfig) (searcher.Policy, error) {
	weight := config.Weight
	if weight == 0 {
		weight = DefaultBiasWeight
	}

	switch config.Policy {
	case "", PolicyUniform:
		return searcher.NewUniformPolicy(), nil
	case PolicyCenter:
		return searcher.NewFavoringPolicy(game.Center, weight), nil
	case PolicyAvoidCenter:
		return searcher.NewAvoidingPolicy(game.Center, weight), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", config.Policy)
	}
}
