package ttt

import (
	"errors"
	"fmt"

	"go-uct/pkg/mcts"
)

// X always moves first
const (
	PlayerX mcts.Player = mcts.PlayerOne
	PlayerO mcts.Player = mcts.PlayerTwo
)

var ErrGameOver = errors.New("ttt: game already over")

// Move marks the cell at (Row, Col) for the player on move
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// The mark placed by 'p'
func PlayerCell(p mcts.Player) Cell {
	switch p {
	case PlayerX:
		return X
	case PlayerO:
		return O
	}
	return Empty
}

// horizontal, vertical and diagonal win paths
var winPaths = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Game is one tic-tac-toe position: the board, the player on move and the
// terminal classification. It is an immutable value, Apply returns the
// successor position, which makes it safe to snapshot inside a search tree.
type Game struct {
	board   Board
	turn    mcts.Player
	outcome mcts.Outcome
}

// A fresh game with an empty board and X to move
func New() Game {
	return Game{turn: PlayerX}
}

func (g Game) Board() Board {
	return g.board
}

// The player on move; on terminal positions, the player who would have
// moved next
func (g Game) Turn() mcts.Player {
	return g.turn
}

// Terminal classification of the position, mcts.Ongoing while playable
func (g Game) Outcome() mcts.Outcome {
	return g.outcome
}

func (g Game) Terminated() bool {
	return g.outcome != mcts.Ongoing
}

// All empty cells in row-major order, empty iff the game is over
func (g Game) GenerateMoves() []Move {
	if g.Terminated() {
		return nil
	}

	moves := make([]Move, 0, 9)
	for row := range g.board {
		for col := range g.board[row] {
			if g.board[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// The position after the player on move marks 'm'. Fails with ErrGameOver
// on a terminated game, and with the board's mark errors for an illegal
// cell.
func (g Game) Apply(m Move) (Game, error) {
	if g.Terminated() {
		return g, ErrGameOver
	}

	board, err := g.board.Mark(PlayerCell(g.turn), m.Row, m.Col)
	if err != nil {
		return g, err
	}

	g.board = board
	g.outcome = classify(board)
	g.turn = g.turn.Opponent()
	return g, nil
}

func classify(b Board) mcts.Outcome {
	for _, path := range winPaths {
		first := b[path[0][0]][path[0][1]]
		if first == Empty {
			continue
		}
		if b[path[1][0]][path[1][1]] == first && b[path[2][0]][path[2][1]] == first {
			if first == X {
				return mcts.WonBy(PlayerX)
			}
			return mcts.WonBy(PlayerO)
		}
	}

	if b.Full() {
		return mcts.Draw
	}
	return mcts.Ongoing
}

func (g Game) String() string {
	return g.board.String()
}
