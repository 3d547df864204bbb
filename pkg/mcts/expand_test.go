package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Run("creates one child per legal move", func(t *testing.T) {
		tree := NewTree[int, nim](newNim(4))

		children, err := tree.Expand(tree.Root())
		require.NoError(t, err)
		require.Len(t, children, 2, "4 tokens allow taking 1 or 2")
		require.Equal(t, children, tree.Children(tree.Root()))
		require.Equal(t, 3, tree.Size())

		for i, child := range children {
			require.Equal(t, tree.Root(), tree.Parent(child))
			require.Equal(t, i+1, tree.Move(child), "children follow legal-move order")
			require.Equal(t, PlayerTwo, tree.State(child).Turn(), "turn switched in child state")
			require.Zero(t, tree.Visits(child))
			require.Zero(t, tree.Wins(child))
		}
		require.Equal(t, 3, tree.State(children[0]).tokens)
		require.Equal(t, 2, tree.State(children[1]).tokens)
	})

	t.Run("fails on an already expanded node", func(t *testing.T) {
		tree := NewTree[int, nim](newNim(4))

		_, err := tree.Expand(tree.Root())
		require.NoError(t, err)

		_, err = tree.Expand(tree.Root())
		require.ErrorIs(t, err, ErrAlreadyExpanded)
	})

	t.Run("terminal state expands to nothing", func(t *testing.T) {
		tree := NewTree[int, nim](newNim(0))

		children, err := tree.Expand(tree.Root())
		require.NoError(t, err)
		require.Empty(t, children, "terminal leaf stays a leaf")
		require.Equal(t, 1, tree.Size())

		// Still not an error to try again, the node has no children
		_, err = tree.Expand(tree.Root())
		require.NoError(t, err)
	})
}
