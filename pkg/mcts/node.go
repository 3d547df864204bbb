package mcts

import (
	"math/rand"
)

// NodeID addresses a node inside the tree's arena. IDs are stable for the
// lifetime of the tree (until Reset or MakeMove rebuild the arena).
type NodeID int32

// Parent sentinel of the root node
const NoNode NodeID = -1

// One node of the search tree. Nodes live in a flat arena owned by the
// Tree and reference each other by index, so the parent back-reference is
// purely observational and cannot form a retain cycle.
type node[M MoveLike, S any] struct {
	state    S
	move     M // move that produced this state, zero value for the root
	parent   NodeID
	children []NodeID // empty until expanded, fixed afterwards
	visits   float64
	wins     float64 // draws count 0.5, so this is fractional
}

// Tree is a Monte Carlo search tree over game states of type S. It owns
// every node, drives the select/expand/rollout/backpropagate cycle and
// answers the best-move query over the root's children.
//
// The tree is strictly single-threaded: every phase runs to completion
// before the next begins and no internal synchronization exists.
type Tree[M MoveLike, S GameState[M, S]] struct {
	nodes    []node[M, S]
	root     NodeID
	rand     *rand.Rand
	c        float64
	limiter  *Limiter
	listener *StatsListener[M]
	cycles   int
	maxdepth int
	cps      uint32
}

// Create a new search tree rooted at 'root'. The exploration parameter and
// the rng seed are taken from the package-level ExplorationParam and
// SeedGeneratorFn at construction time.
func NewTree[M MoveLike, S GameState[M, S]](root S) *Tree[M, S] {
	t := &Tree[M, S]{
		nodes:    make([]node[M, S], 0, 64),
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
		c:        ExplorationParam,
		limiter:  NewLimiter(),
		listener: &StatsListener[M]{nCycles: 1},
	}
	t.nodes = append(t.nodes, node[M, S]{state: root, parent: NoNode})
	return t
}

// Discard the whole tree and start over from 'root'
func (t *Tree[M, S]) Reset(root S) {
	t.nodes = t.nodes[:0]
	t.nodes = append(t.nodes, node[M, S]{state: root, parent: NoNode})
	t.root = 0
	t.cycles = 0
	t.maxdepth = 0
	t.cps = 0
}

// The root of the tree
func (t *Tree[M, S]) Root() NodeID {
	return t.root
}

// Number of nodes in the tree
func (t *Tree[M, S]) Size() int {
	return len(t.nodes)
}

// Game state snapshot held by 'id'
func (t *Tree[M, S]) State(id NodeID) S {
	return t.nodes[id].state
}

// The move that produced 'id' from its parent, zero value for the root
func (t *Tree[M, S]) Move(id NodeID) M {
	return t.nodes[id].move
}

// Parent of 'id', NoNode for the root
func (t *Tree[M, S]) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Children of 'id', in legal-move order. Empty for leaves. The returned
// slice is owned by the tree, do not modify it.
func (t *Tree[M, S]) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// Number of rollout results folded into 'id'
func (t *Tree[M, S]) Visits(id NodeID) float64 {
	return t.nodes[id].visits
}

// Accumulated win credit of 'id' (draws count 0.5)
func (t *Tree[M, S]) Wins(id NodeID) float64 {
	return t.nodes[id].wins
}

// Set the exploration parameter for this tree only
func (t *Tree[M, S]) SetExplorationParam(c float64) {
	t.c = max(0.0, c)
}

// Replace the tree's random number generator, used by rollouts
func (t *Tree[M, S]) SetRand(r *rand.Rand) {
	if r != nil {
		t.rand = r
	}
}

// Tries to make given 'move' the new root, keeping the subtree and its
// accumulated statistics. Returns false if the root has no child for that
// move (e.g. it was never expanded), in which case the tree is unchanged.
func (t *Tree[M, S]) MakeMove(move M) bool {
	var newRoot NodeID = NoNode
	for _, child := range t.nodes[t.root].children {
		if t.nodes[child].move == move {
			newRoot = child
			break
		}
	}
	if newRoot == NoNode {
		return false
	}

	t.rebase(newRoot)
	t.maxdepth = max(0, t.maxdepth-1)
	return true
}

// Rebuild the arena so that only the subtree under 'id' survives,
// releasing every node outside it
func (t *Tree[M, S]) rebase(id NodeID) {
	nodes := make([]node[M, S], 0, len(t.nodes))

	// Breadth-first copy, remapping indices as we go
	queue := []NodeID{id}
	remap := map[NodeID]NodeID{id: 0}
	for len(queue) > 0 {
		old := queue[0]
		queue = queue[1:]

		n := t.nodes[old]
		if old == id {
			n.parent = NoNode
		} else {
			n.parent = remap[n.parent]
		}

		children := make([]NodeID, len(n.children))
		for i, child := range n.children {
			next := NodeID(len(remap))
			remap[child] = next
			children[i] = next
			queue = append(queue, child)
		}
		n.children = children
		nodes = append(nodes, n)
	}

	t.nodes = nodes
	t.root = 0
}
