package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Default squared exploration constant

// Rewards estimate the chance of winning from the node player's perspective
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

func computeReward(winner string, player string) float64 {
	switch winner {
	case player:
		return Win
	case "": // Drawn game
		return Draw
	default:
		return Loss
	}
}
