package mcts

import "fmt"

// Backpropagate folds a terminal result into every node from 'id' up to
// the root, inclusive. Each node on the path gains one visit; win credit
// depends on whose move is pending at that node's state:
//
//   - the winner is NOT the pending mover: +1. The move into this state
//     was made by the winner, so it should look attractive to them.
//   - the winner IS the pending mover: +0, only the visit counts.
//   - a draw credits +0.5 everywhere on the path.
//
// The walk is an iterative parent-index loop, so deep trees cannot
// overflow the stack. A non-terminal outcome fails with ErrOngoingOutcome.
func (t *Tree[M, S]) Backpropagate(id NodeID, outcome Outcome) error {
	if !outcome.Terminal() {
		return fmt.Errorf("%w: %v", ErrOngoingOutcome, outcome)
	}

	winner := outcome.Winner()
	for id != NoNode {
		n := &t.nodes[id]
		n.visits++
		switch {
		case winner == NoPlayer:
			n.wins += 0.5
		case winner != n.state.Turn():
			n.wins++
		}
		id = n.parent
	}
	return nil
}
