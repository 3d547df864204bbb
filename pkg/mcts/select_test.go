package mcts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectLeaf(t *testing.T) {
	t.Run("unexpanded root is its own leaf", func(t *testing.T) {
		tree := NewTree[int, nim](newNim(4))
		require.Equal(t, tree.Root(), tree.SelectLeaf())
	})

	t.Run("unvisited children come first", func(t *testing.T) {
		tree := NewTree[int, nim](newNim(4))
		children, err := tree.Expand(tree.Root())
		require.NoError(t, err)

		// All children unseen: the first one wins the tie deterministically
		require.Equal(t, children[0], tree.SelectLeaf())

		// A strong sibling must not shadow an unseen child
		tree.nodes[children[0]].visits = 5
		tree.nodes[children[0]].wins = 5
		tree.nodes[tree.Root()].visits = 5
		require.Equal(t, children[1], tree.SelectLeaf())
	})

	t.Run("prefers the higher UCT score", func(t *testing.T) {
		tree := NewTree[int, nim](newNim(4))
		children, err := tree.Expand(tree.Root())
		require.NoError(t, err)

		// Both seen; children[1] implies the better win rate
		tree.nodes[tree.Root()].visits = 10
		tree.nodes[children[0]].visits = 5
		tree.nodes[children[0]].wins = 1
		tree.nodes[children[1]].visits = 5
		tree.nodes[children[1]].wins = 4

		score := func(wins, visits float64) float64 {
			return wins/visits + math.Sqrt2*math.Sqrt(math.Log(10)/visits)
		}
		require.Greater(t, score(4, 5), score(1, 5))
		require.Equal(t, children[1], tree.SelectLeaf())
	})

	t.Run("descends to the deepest leaf on the best path", func(t *testing.T) {
		tree := NewTree[int, nim](newNim(4))
		children, err := tree.Expand(tree.Root())
		require.NoError(t, err)
		grandchildren, err := tree.Expand(children[1])
		require.NoError(t, err)

		// Make children[1] dominate; its own children are unseen, so the
		// descent stops at the first grandchild
		tree.nodes[tree.Root()].visits = 14
		tree.nodes[children[0]].visits = 4
		tree.nodes[children[1]].visits = 10
		tree.nodes[children[1]].wins = 9

		require.Equal(t, grandchildren[0], tree.SelectLeaf())
	})
}
