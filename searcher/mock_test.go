package searcher

import (
	"fmt"
	"tictac/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("move%d", m.id)
}

// mockState scripts a fixed move list and winner. Play records the moves
// taken so tests can assert on the path.
type mockState struct {
	player string
	moves  []game.Move
	winner string
	played []game.Move
}

func (s mockState) Player() string {
	return s.player
}

func (s mockState) LegalMoves() []game.Move {
	return s.moves
}

func (s mockState) Play(move game.Move) game.State {
	next := s
	next.played = append(append([]game.Move{}, s.played...), move)
	return next
}

func (s mockState) Winner() string {
	return s.winner
}
