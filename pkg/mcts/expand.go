package mcts

import "fmt"

// Expand materializes one child of 'id' per legal move of its state, each
// child starting with zero statistics. Returns the new children in
// legal-move order.
//
// Expanding a terminal state is a no-op producing no children: the node
// stays a leaf, and callers must check the state's terminality to tell a
// terminal leaf from an unexpanded one. Expanding a node that already has
// children fails with ErrAlreadyExpanded.
func (t *Tree[M, S]) Expand(id NodeID) ([]NodeID, error) {
	if len(t.nodes[id].children) > 0 {
		return nil, fmt.Errorf("%w: node %d has %d children",
			ErrAlreadyExpanded, id, len(t.nodes[id].children))
	}

	state := t.nodes[id].state
	moves := state.GenerateMoves()
	if len(moves) == 0 {
		return nil, nil
	}

	children := make([]NodeID, len(moves))
	for i, move := range moves {
		next, err := state.Apply(move)
		if err != nil {
			// The move came from GenerateMoves, so this is a bug in the
			// game implementation and the tree cannot be trusted anymore
			panic(fmt.Sprintf("mcts: generated move %v failed to apply: %v", move, err))
		}

		child := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, node[M, S]{
			state:  next,
			move:   move,
			parent: id,
		})
		children[i] = child
	}
	t.nodes[id].children = children

	return children, nil
}
