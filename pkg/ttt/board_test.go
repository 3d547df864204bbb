package ttt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		var b Board
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				cell, err := b.Cell(row, col)
				require.NoError(t, err)
				require.Equal(t, Empty, cell)
			}
		}
		require.False(t, b.Full())
	})

	t.Run("marking returns a new board", func(t *testing.T) {
		var b Board
		marked, err := b.Mark(X, 0, 0)
		require.NoError(t, err)

		cell, err := marked.Cell(0, 0)
		require.NoError(t, err)
		require.Equal(t, X, cell)

		// The original value is untouched
		cell, err = b.Cell(0, 0)
		require.NoError(t, err)
		require.Equal(t, Empty, cell)
	})

	t.Run("rejects out of range marks", func(t *testing.T) {
		var b Board
		_, err := b.Mark(X, 5, 1)
		require.ErrorIs(t, err, ErrOutOfRange)
		_, err = b.Mark(X, 1, -1)
		require.ErrorIs(t, err, ErrOutOfRange)
		_, err = b.Cell(3, 0)
		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("rejects marking a non-empty cell", func(t *testing.T) {
		var b Board
		b, err := b.Mark(X, 0, 0)
		require.NoError(t, err)

		_, err = b.Mark(O, 0, 0)
		require.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("renders a 3x3 grid", func(t *testing.T) {
		var b Board
		b, _ = b.Mark(X, 0, 0)
		b, _ = b.Mark(O, 1, 1)

		want := " X |   |   \n" +
			"-----------\n" +
			"   | O |   \n" +
			"-----------\n" +
			"   |   |   "
		require.Equal(t, want, b.String())
	})
}
