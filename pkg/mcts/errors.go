package mcts

import "errors"

// Programmer-misuse errors. The tree never recovers from these on its own,
// a caller hitting them has broken the expand/backpropagate protocol.
var (
	// Returned by Expand when the node already has children
	ErrAlreadyExpanded = errors.New("mcts: node already expanded")

	// Returned by Backpropagate for a non-terminal outcome
	ErrOngoingOutcome = errors.New("mcts: cannot backpropagate an ongoing outcome")
)
