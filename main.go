package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tictac/experiments"
	"tictac/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "", "canned experiment to run: strength or heuristic (empty runs a single match)")
	games := flag.Int("games", 100, "games per matchup")
	workers := flag.Int("workers", 8, "games played in parallel")
	seed := flag.Uint64("seed", 1, "base random seed")
	iter1 := flag.Int("iter1", 1000, "agent 1 iteration budget")
	iter2 := flag.Int("iter2", 1000, "agent 2 iteration budget")
	policy1 := flag.String("policy1", experiments.PolicyUniform, "agent 1 rollout policy: uniform, center or avoid-center")
	policy2 := flag.String("policy2", experiments.PolicyUniform, "agent 2 rollout policy")
	weight := flag.Float64("weight", experiments.DefaultBiasWeight, "bias strength for the center policies")
	verbose := flag.Bool("verbose", false, "log every move")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).Level(level)

	var err error
	switch *experiment {
	case "strength":
		err = experiments.RunStrengthExperiment(*games, *workers, *seed)
	case "heuristic":
		err = experiments.RunHeuristicExperiment(*games, *workers, *seed)
	case "":
		err = runMatch(*iter1, *policy1, *iter2, *policy2, *weight, *games, *workers, *seed)
	default:
		err = fmt.Errorf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runMatch(iter1 int, policy1 string, iter2 int, policy2 string, weight float64, games, workers int, seed uint64) error {
	config1 := metrics.AgentConfig{ID: 1, Iterations: iter1, Policy: policy1, Weight: weight}
	config2 := metrics.AgentConfig{ID: 2, Iterations: iter2, Policy: policy2, Weight: weight}

	result, err := experiments.RunMatch(config1, config2, games, workers, seed)
	if err != nil {
		return err
	}

	log.Info().
		Int("wins1", result.Wins1).Int("wins2", result.Wins2).Int("draws", result.Draws).
		Float64("score1", result.Score1).Float64("stderr", result.StdErr).
		Dur("duration", result.Duration).
		Msgf("match over: %d-iteration %s vs %d-iteration %s", iter1, config1.Policy, iter2, config2.Policy)
	return nil
}
