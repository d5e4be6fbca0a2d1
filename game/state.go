package game

// Move identifies a legal action relative to a specific State.
type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Player returns the player to move.
	Player() string
	// LegalMoves returns the available moves, or nil once the game is over.
	// A state is terminal if and only if it has no legal moves.
	LegalMoves() []Move
	// Play applies a legal move and returns the successor state. Applying an
	// illegal move is a programming error and panics.
	Play(Move) State
	// Winner returns the winning player, or "" while the game is ongoing or
	// drawn. Winner of a terminal state being "" means a draw.
	Winner() string
}
