package mcts

// Move signatures must be comparable, so the tree can find
// a child by the move that created it
type MoveLike comparable

type Player uint8

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	}
	return "none"
}

// Terminal classification of a game state. Ongoing is not terminal,
// everything else is.
type Outcome uint8

const (
	Ongoing Outcome = iota
	PlayerOneWon
	PlayerTwoWon
	Draw
)

// Outcome of a game won by 'p'
func WonBy(p Player) Outcome {
	switch p {
	case PlayerOne:
		return PlayerOneWon
	case PlayerTwo:
		return PlayerTwoWon
	}
	return Ongoing
}

func (o Outcome) Terminal() bool {
	return o != Ongoing
}

// The winning player, or NoPlayer for a draw/ongoing game
func (o Outcome) Winner() Player {
	switch o {
	case PlayerOneWon:
		return PlayerOne
	case PlayerTwoWon:
		return PlayerTwo
	}
	return NoPlayer
}

func (o Outcome) String() string {
	switch o {
	case PlayerOneWon:
		return "player1 won"
	case PlayerTwoWon:
		return "player2 won"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

// GameState is the contract between the search tree and the game
// implementation. States are immutable values: Apply returns the successor
// state and never modifies the receiver, so the tree can hold one snapshot
// per node and rollouts can never corrupt it.
//
// Required properties:
//   - GenerateMoves is deterministic, exhaustive, and empty iff the
//     state is terminal
//   - Turn is valid on terminal states as well (the player who would
//     have moved next)
//   - Apply fails only for moves that did not come from GenerateMoves
type GameState[M MoveLike, S any] interface {
	// Whether the game is over in this state
	Terminated() bool
	// The player to move (pending mover on terminal states)
	Turn() Player
	// All legal moves in this state, in a stable order
	GenerateMoves() []M
	// The successor state after playing 'move'
	Apply(move M) (S, error)
	// Terminal classification, Ongoing for non-terminal states
	Outcome() Outcome
}

type BestChildPolicy int

const (
	// When choosing the best child, choose the one with most visits,
	// this is the go-to method for MCTS
	BestChildMostVisits BestChildPolicy = iota

	// Choose the child with the best win rate, noisier on low visit counts
	BestChildWinRate
)
