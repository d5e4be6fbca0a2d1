package engine

import (
	"time"

	"tictac/experiments/metrics"
	"tictac/game"

	"github.com/rs/zerolog/log"
)

// Agent decides a move for the player whose turn it is.
type Agent interface {
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

// Engine runs a complete game between two agents on a shared state.
type Engine struct {
	agents map[string]Agent
}

// LocalEngine returns an engine playing agentX as "X" against agentO as "O"
// in the same process.
func LocalEngine(agentX, agentO Agent) *Engine {
	if agentX == nil || agentO == nil {
		panic("both agents are required")
	}

	return &Engine{
		agents: map[string]Agent{
			game.PlayerX: agentX,
			game.PlayerO: agentO,
		},
	}
}

// Run executes the game loop from start until a terminal state, dispatching
// each turn to the agent of the player to move. It returns the winner ("" for
// a draw) along with game and per-move metrics.
func (e *Engine) Run(start game.State) (string, metrics.GameMetric, []metrics.MoveMetric) {
	state := start
	startTime := time.Now()
	startingPlayer := state.Player()

	log.Debug().Str("player", startingPlayer).Msg("game starting")

	var moveMetrics []metrics.MoveMetric
	step := 0
	for len(state.LegalMoves()) > 0 {
		step++
		player := state.Player()

		move, searchMetric := e.agents[player].FindMove(state)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: searchMetric,
		})

		log.Debug().Int("step", step).Str("player", player).
			Stringer("move", move).Dur("search", searchMetric.Duration).
			Msg("move played")

		state = state.Play(move)
	}

	winner := state.Winner()
	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         winner,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     step,
	}

	log.Debug().Str("winner", winner).Int("moves", step).
		Dur("duration", gameMetric.Duration).Msg("game over")

	return winner, gameMetric, moveMetrics
}
