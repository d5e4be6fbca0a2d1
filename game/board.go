package game

import (
	"fmt"
	"math/bits"
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Square is a cell on the 3x3 board, numbered 0..8 in row-major order.
type Square int

// Center is the middle square of the board.
const Center = Square(4)

func (s Square) Row() int { return int(s) / 3 }

func (s Square) Col() int { return int(s) % 3 }

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row(), s.Col())
}

const fullBoard = 0b111111111

// Horizontal, vertical and diagonal winning lines as bitboards
var winningLines = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Board is an immutable tic-tac-toe position. Each player's marks live in
// their own bitboard; the mover is derived from the mark counts (X starts).
type Board struct {
	marks [2]uint16 // X = 0, O = 1
}

// NewBoard returns an empty board with X to move.
func NewBoard() Board {
	return Board{}
}

func (b Board) Player() string {
	if bits.OnesCount16(b.marks[0]) > bits.OnesCount16(b.marks[1]) {
		return PlayerO
	}
	return PlayerX
}

// LegalMoves returns the empty squares in ascending order, or nil once a
// player has completed a line or the board is full.
func (b Board) LegalMoves() []Move {
	if b.Winner() != "" {
		return nil
	}

	free := uint(fullBoard &^ (b.marks[0] | b.marks[1]))
	if free == 0 {
		return nil
	}

	moves := make([]Move, 0, bits.OnesCount(free))
	for free != 0 {
		moves = append(moves, Square(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return moves
}

// Play marks the given square for the player to move and returns the
// successor position. Playing an occupied square or a finished game panics.
func (b Board) Play(move Move) State {
	square, ok := move.(Square)
	if !ok {
		panic(fmt.Sprintf("illegal move: unexpected move type %T", move))
	}
	if square < 0 || square > 8 {
		panic(fmt.Sprintf("illegal move: square %d off the board", int(square)))
	}
	if b.Winner() != "" {
		panic(fmt.Sprintf("illegal move %v: game is over", square))
	}

	bit := uint16(1) << square
	if (b.marks[0]|b.marks[1])&bit != 0 {
		panic(fmt.Sprintf("illegal move %v: square is occupied", square))
	}

	next := b
	if b.Player() == PlayerX {
		next.marks[0] |= bit
	} else {
		next.marks[1] |= bit
	}
	return next
}

func (b Board) Winner() string {
	for _, line := range winningLines {
		if b.marks[0]&line == line {
			return PlayerX
		}
		if b.marks[1]&line == line {
			return PlayerO
		}
	}
	return ""
}

func (b Board) String() string {
	cells := [9]byte{}
	for i := range cells {
		bit := uint16(1) << i
		switch {
		case b.marks[0]&bit != 0:
			cells[i] = 'X'
		case b.marks[1]&bit != 0:
			cells[i] = 'O'
		default:
			cells[i] = '.'
		}
	}
	return fmt.Sprintf("%s\n%s\n%s", cells[0:3], cells[3:6], cells[6:9])
}
