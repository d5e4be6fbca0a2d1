package searcher

import (
	"testing"
	"tictac/game"

	"github.com/stretchr/testify/require"
)

func pickRate(t *testing.T, policy Policy, moves []game.Move, target game.Move, draws int) float64 {
	t.Helper()
	rng := testRand()
	state := mockState{player: "X", moves: moves}

	hits := 0
	for i := 0; i < draws; i++ {
		if policy.Pick(state, moves, rng) == target {
			hits++
		}
	}
	return float64(hits) / float64(draws)
}

func nineMoves() []game.Move {
	moves := make([]game.Move, 9)
	for i := range moves {
		moves[i] = mockMove{id: i}
	}
	return moves
}

func TestUniformPolicy(t *testing.T) {
	moves := nineMoves()

	rate := pickRate(t, NewUniformPolicy(), moves, moves[4], 9000)
	require.InDelta(t, 1.0/9.0, rate, 0.02, "each move should be picked about equally often")
}

func TestFavoringPolicy(t *testing.T) {
	moves := nineMoves()
	target := moves[4]

	t.Run("target is overrepresented", func(t *testing.T) {
		// Weight 4 among 9 moves: 4 of 12 tickets
		rate := pickRate(t, NewFavoringPolicy(target, 4), moves, target, 9000)
		require.InDelta(t, 4.0/12.0, rate, 0.03)
	})

	t.Run("weight 1 degenerates to uniform", func(t *testing.T) {
		rate := pickRate(t, NewFavoringPolicy(target, 1), moves, target, 9000)
		require.InDelta(t, 1.0/9.0, rate, 0.02)
	})

	t.Run("absent target falls back to uniform", func(t *testing.T) {
		rate := pickRate(t, NewFavoringPolicy(mockMove{id: 99}, 4), moves, moves[0], 9000)
		require.InDelta(t, 1.0/9.0, rate, 0.02)
	})

	t.Run("sole legal move is returned", func(t *testing.T) {
		only := []game.Move{target}
		got := NewFavoringPolicy(target, 4).Pick(mockState{}, only, testRand())
		require.Equal(t, game.Move(target), got)
	})

	t.Run("non-positive weight panics", func(t *testing.T) {
		require.Panics(t, func() { NewFavoringPolicy(target, 0) })
	})
}

func TestAvoidingPolicy(t *testing.T) {
	moves := nineMoves()
	target := moves[4]

	t.Run("target is underrepresented", func(t *testing.T) {
		// Weight 4 avoidance among 9 moves: 0.25 of 8.25 tickets
		rate := pickRate(t, NewAvoidingPolicy(target, 4), moves, target, 9000)
		require.InDelta(t, 0.25/8.25, rate, 0.02)
		require.Less(t, rate, 1.0/9.0)
	})

	t.Run("sole legal move is still returned", func(t *testing.T) {
		only := []game.Move{target}
		got := NewAvoidingPolicy(target, 4).Pick(mockState{}, only, testRand())
		require.Equal(t, game.Move(target), got)
	})
}
