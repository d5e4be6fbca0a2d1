package experiments

import (
	"fmt"

	"tictac/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunStrengthExperiment pits a fixed-budget baseline against increasingly
// large tree sizes: win rates should swing toward the bigger budget as it
// grows.
func RunStrengthExperiment(games, workers int, seed uint64) error {
	baseline := metrics.AgentConfig{ID: 1, Iterations: 100, Policy: PolicyUniform}
	ladder := []metrics.AgentConfig{
		{ID: 2, Iterations: 100, Policy: PolicyUniform},
		{ID: 3, Iterations: 500, Policy: PolicyUniform},
		{ID: 4, Iterations: 1000, Policy: PolicyUniform},
		{ID: 5, Iterations: 10000, Policy: PolicyUniform},
	}

	matchups := [][2]metrics.AgentConfig{}
	for _, config := range ladder {
		matchups = append(matchups, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("strength", append([]metrics.AgentConfig{baseline}, ladder...), matchups, games, workers, seed)
}

// RunHeuristicExperiment pits the uniform rollout policy against the
// center-favoring one at equal, increasing budgets: the heuristic's edge
// should shrink toward 50/50 as the tree grows.
func RunHeuristicExperiment(games, workers int, seed uint64) error {
	budgets := []int{100, 200, 500, 1000}

	configs := []metrics.AgentConfig{}
	matchups := [][2]metrics.AgentConfig{}
	for i, budget := range budgets {
		vanilla := metrics.AgentConfig{ID: 2*i + 1, Iterations: budget, Policy: PolicyUniform}
		heuristic := metrics.AgentConfig{ID: 2*i + 2, Iterations: budget, Policy: PolicyCenter, Weight: DefaultBiasWeight}
		configs = append(configs, vanilla, heuristic)
		matchups = append(matchups, [2]metrics.AgentConfig{heuristic, vanilla})
	}

	return runExperiment("heuristic", configs, matchups, games, workers, seed)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchups [][2]metrics.AgentConfig, games, workers int, seed uint64) error {
	log.Info().Str("experiment", name).Int("games", games).
		Int("workers", workers).Msg("starting experiment")

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchup := range matchups {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Int("matchup", mi+1).Int("of", len(matchups)).
			Msgf("agent %+v vs agent %+v", config1, config2)

		result, err := RunMatch(config1, config2, games, workers, seed+uint64(mi)*uint64(2*games))
		if err != nil {
			return fmt.Errorf("matchup %d: %w", mi+1, err)
		}

		for _, outcome := range result.Outcomes {
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: outcome.Metric,
			})
			for _, mm := range outcome.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}

		log.Info().Int("matchup", mi+1).
			Int("wins1", result.Wins1).Int("wins2", result.Wins2).Int("draws", result.Draws).
			Float64("score1", result.Score1).Float64("stderr", result.StdErr).
			Dur("duration", result.Duration).Msg("completed matchup")
	}

	log.Info().Str("experiment", name).Msg("completed experiment")

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err = writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("experiment", name).Msg("stored experiment records")

	return nil
}
