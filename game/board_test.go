package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func play(t *testing.T, b Board, squares ...Square) Board {
	t.Helper()
	for _, s := range squares {
		b = b.Play(s).(Board)
	}
	return b
}

func TestBoardPlayer(t *testing.T) {
	b := NewBoard()
	require.Equal(t, PlayerX, b.Player(), "X should move first")

	b = play(t, b, Square(0))
	require.Equal(t, PlayerO, b.Player(), "players should alternate")

	b = play(t, b, Square(4))
	require.Equal(t, PlayerX, b.Player(), "players should alternate")
}

func TestBoardLegalMoves(t *testing.T) {
	t.Run("empty board has all nine squares", func(t *testing.T) {
		moves := NewBoard().LegalMoves()
		require.Len(t, moves, 9)
		for i, move := range moves {
			require.Equal(t, Square(i), move, "moves should be in ascending square order")
		}
	})

	t.Run("occupied squares are excluded", func(t *testing.T) {
		b := play(t, NewBoard(), Square(4), Square(0))
		moves := b.LegalMoves()
		require.Len(t, moves, 7)
		require.NotContains(t, moves, Move(Square(4)))
		require.NotContains(t, moves, Move(Square(0)))
	})

	t.Run("won game has no moves", func(t *testing.T) {
		// X: 0 1 2 (top row), O: 3 4
		b := play(t, NewBoard(), Square(0), Square(3), Square(1), Square(4), Square(2))
		require.Equal(t, PlayerX, b.Winner())
		require.Empty(t, b.LegalMoves())
	})

	t.Run("drawn game has no moves", func(t *testing.T) {
		// X O X / X O O / O X X - full board, no line
		b := play(t, NewBoard(),
			Square(0), Square(1), Square(2),
			Square(4), Square(3), Square(5),
			Square(7), Square(6), Square(8))
		require.Empty(t, b.Winner())
		require.Empty(t, b.LegalMoves())
	})
}

func TestBoardWinner(t *testing.T) {
	t.Run("row win", func(t *testing.T) {
		b := play(t, NewBoard(), Square(3), Square(0), Square(4), Square(1), Square(5))
		require.Equal(t, PlayerX, b.Winner())
	})

	t.Run("column win", func(t *testing.T) {
		b := play(t, NewBoard(), Square(0), Square(1), Square(3), Square(4), Square(8), Square(7))
		require.Equal(t, PlayerO, b.Winner())
	})

	t.Run("diagonal win", func(t *testing.T) {
		b := play(t, NewBoard(), Square(0), Square(1), Square(4), Square(2), Square(8))
		require.Equal(t, PlayerX, b.Winner())
	})

	t.Run("ongoing game has no winner", func(t *testing.T) {
		b := play(t, NewBoard(), Square(0), Square(4))
		require.Empty(t, b.Winner())
	})
}

func TestBoardPlayIsCopyOnWrite(t *testing.T) {
	b := NewBoard()
	next := b.Play(Square(4))

	require.Len(t, b.LegalMoves(), 9, "original board should be unchanged")
	require.Len(t, next.LegalMoves(), 8)
}

func TestBoardPlayPanics(t *testing.T) {
	t.Run("occupied square", func(t *testing.T) {
		b := play(t, NewBoard(), Square(4))
		require.Panics(t, func() { b.Play(Square(4)) })
	})

	t.Run("square off the board", func(t *testing.T) {
		require.Panics(t, func() { NewBoard().Play(Square(9)) })
	})

	t.Run("finished game", func(t *testing.T) {
		b := play(t, NewBoard(), Square(0), Square(3), Square(1), Square(4), Square(2))
		require.Panics(t, func() { b.Play(Square(5)) })
	})
}

func TestCenterSquare(t *testing.T) {
	require.Equal(t, 1, Center.Row())
	require.Equal(t, 1, Center.Col())
}
