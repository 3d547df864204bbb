package mcts

import "fmt"

// Rollout plays uniformly random moves from the state held by 'id' until
// the game ends and returns the terminal classification. The node's
// snapshot is never touched, the playout runs on successor values only.
//
// On an already-terminal state this returns its classification without
// generating a single move. The result is never Ongoing.
func (t *Tree[M, S]) Rollout(id NodeID) Outcome {
	state := t.nodes[id].state
	for !state.Terminated() {
		moves := state.GenerateMoves()
		move := moves[t.rand.Intn(len(moves))]

		next, err := state.Apply(move)
		if err != nil {
			panic(fmt.Sprintf("mcts: generated move %v failed to apply: %v", move, err))
		}
		state = next
	}
	return state.Outcome()
}
