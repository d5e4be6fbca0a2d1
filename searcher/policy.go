package searcher

import (
	"fmt"
	"tictac/game"

	"golang.org/x/exp/rand"
)

// Policy chooses one of the legal moves during rollout and expansion. A
// policy must be a pure function of the state, the moves and the random
// source, with at least one move available.
type Policy interface {
	Pick(state game.State, moves []game.Move, rng *rand.Rand) game.Move
}

type uniform struct{}

// NewUniformPolicy returns the vanilla rollout policy: a uniform-random
// choice among the legal moves.
func NewUniformPolicy() Policy {
	return uniform{}
}

func (uniform) Pick(_ game.State, moves []game.Move, rng *rand.Rand) game.Move {
	return moves[rng.Intn(len(moves))]
}

// biased draws from an urn holding one ticket per legal move, except the
// target move which holds weight tickets. Weight 1 degenerates to uniform.
type biased struct {
	target game.Move
	weight float64
}

// NewFavoringPolicy returns a rollout policy preferring the target move
// whenever it is legal. Weight must be positive; weights above 1 favor the
// target, weights below 1 shun it.
func NewFavoringPolicy(target game.Move, weight float64) Policy {
	if weight <= 0 {
		panic(fmt.Sprintf("policy weight must be positive, got %v", weight))
	}
	return biased{target: target, weight: weight}
}

// NewAvoidingPolicy mirrors NewFavoringPolicy: the target move is picked
// weight times less often than any other legal move.
func NewAvoidingPolicy(target game.Move, weight float64) Policy {
	if weight <= 0 {
		panic(fmt.Sprintf("policy weight must be positive, got %v", weight))
	}
	return biased{target: target, weight: 1 / weight}
}

func (b biased) Pick(_ game.State, moves []game.Move, rng *rand.Rand) game.Move {
	found := false
	for _, move := range moves {
		if move == b.target {
			found = true
			break
		}
	}
	if !found {
		return moves[rng.Intn(len(moves))]
	}

	if len(moves) == 1 {
		return b.target
	}

	total := float64(len(moves)-1) + b.weight
	if rng.Float64()*total < b.weight {
		return b.target
	}

	// Uniform among the other moves
	ith := rng.Intn(len(moves) - 1)
	for _, move := range moves {
		if move == b.target {
			continue
		}
		if ith == 0 {
			return move
		}
		ith--
	}
	panic("unreachable")
}
