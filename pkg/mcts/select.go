package mcts

import "math"

// SelectLeaf walks from the root down to the first node without children,
// at every step following the child with the best UCT score.
func (t *Tree[M, S]) SelectLeaf() NodeID {
	id := t.root
	depth := 0
	for len(t.nodes[id].children) > 0 {
		id = t.selectChild(id)
		depth++
	}

	if depth > t.maxdepth {
		t.maxdepth = depth
		t.invokeListener(t.listener.onDepth)
	}
	return id
}

// Pick the child of 'id' maximizing
//
//	wins/visits + C * sqrt(ln(parent.visits) / visits)
//
// Unvisited children make the formula divide by zero, they are treated as
// having infinite score: the first one encountered is returned immediately,
// so every child is sampled once before any sibling is revisited.
func (t *Tree[M, S]) selectChild(id NodeID) NodeID {
	parent := &t.nodes[id]
	lnParentVisits := math.Log(parent.visits)

	best := parent.children[0]
	bestScore := math.Inf(-1)
	for _, cid := range parent.children {
		child := &t.nodes[cid]
		if child.visits == 0 {
			return cid
		}

		score := child.wins/child.visits +
			t.c*math.Sqrt(lnParentVisits/child.visits)
		if score > bestScore {
			bestScore = score
			best = cid
		}
	}
	return best
}
