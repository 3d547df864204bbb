package ttt

import (
	"go-uct/pkg/mcts"
)

// Search binds a tic-tac-toe game into the MCTS core. The embedded tree
// exposes the whole engine surface (SetLimits, Search, RootMove, Pv,
// listeners); Play keeps the tree in sync with the game being played.
type Search struct {
	*mcts.Tree[Move, Game]
}

func NewSearch(game Game) *Search {
	return &Search{mcts.NewTree[Move, Game](game)}
}

// The position at the root of the tree
func (s *Search) Game() Game {
	return s.State(s.Root())
}

// Play applies 'm' to the root position and advances the tree. When the
// move already has a child node its subtree and statistics survive,
// otherwise the tree restarts from the new position. Move errors from the
// game surface unchanged, with the tree untouched.
func (s *Search) Play(m Move) error {
	next, err := s.Game().Apply(m)
	if err != nil {
		return err
	}

	if !s.MakeMove(m) {
		s.Reset(next)
	}
	return nil
}
