package ttt

import (
	"errors"
	"strings"
)

type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Move errors, surfaced through Game.Apply
var (
	ErrOutOfRange   = errors.New("ttt: cell index out of range")
	ErrCellOccupied = errors.New("ttt: cell already occupied")
)

// A 3x3 tic-tac-toe board. Plain value type: marking returns a new board,
// the receiver is never modified.
type Board [3][3]Cell

// Cell at (row, col), ErrOutOfRange when off the board
func (b Board) Cell(row, col int) (Cell, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return Empty, ErrOutOfRange
	}
	return b[row][col], nil
}

// The board with 'mark' placed at (row, col). Fails with ErrOutOfRange for
// an off-board location and ErrCellOccupied for a non-empty cell.
func (b Board) Mark(mark Cell, row, col int) (Board, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return b, ErrOutOfRange
	}
	if b[row][col] != Empty {
		return b, ErrCellOccupied
	}
	b[row][col] = mark
	return b, nil
}

func (b Board) Full() bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

func (b Board) String() string {
	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			builder.WriteString(" " + b[row][col].String() + " ")
			if col < 2 {
				builder.WriteString("|")
			}
		}
		if row < 2 {
			builder.WriteString("\n-----------\n")
		}
	}
	return builder.String()
}
