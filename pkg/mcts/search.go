package mcts

import "math"

// RunIteration performs one full search cycle: select a leaf, expand it if
// its state is non-terminal, then rollout and backpropagate once per new
// child. A terminal leaf gets a zero-move rollout and a backpropagation of
// its own classification instead.
func (t *Tree[M, S]) RunIteration() error {
	leaf := t.SelectLeaf()

	if t.nodes[leaf].state.Terminated() {
		if err := t.Backpropagate(leaf, t.Rollout(leaf)); err != nil {
			return err
		}
	} else {
		children, err := t.Expand(leaf)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := t.Backpropagate(child, t.Rollout(child)); err != nil {
				return err
			}
		}
	}

	t.cycles++
	return nil
}

// Search runs iterations until one of the configured limits trips (see
// SetLimits) or the context set with SetContext is cancelled. Blocks until
// done; an unlimited search on a non-terminal root never returns.
func (t *Tree[M, S]) Search() {
	t.limiter.Reset()
	t.cycles = 0
	t.maxdepth = 0
	t.cps = 0

	// Nothing to search on a finished game
	if t.nodes[t.root].state.Terminated() {
		t.limiter.EvaluateStopReason(uint32(t.Size()), uint32(t.maxdepth), uint32(t.cycles))
		t.invokeListener(t.listener.onStop)
		return
	}

	for t.limiter.Ok(uint32(t.Size()), uint32(t.maxdepth), uint32(t.cycles)) {
		if err := t.RunIteration(); err != nil {
			// Iterations driven by Search cannot misuse the tree, so any
			// error here means corrupted state
			panic(err)
		}

		t.cps = uint32(t.cycles) * 1000 / t.limiter.Elapsed()
		if t.listener.onCycle != nil && t.cycles%t.listener.nCycles == 0 {
			t.listener.onCycle(t.stats())
		}
	}

	t.limiter.EvaluateStopReason(uint32(t.Size()), uint32(t.maxdepth), uint32(t.cycles))
	t.invokeListener(t.listener.onStop)
}

// Return the best child of 'id' based on the policy, NoNode if no child
// has been visited yet
func (t *Tree[M, S]) BestChild(id NodeID, policy BestChildPolicy) NodeID {
	best := NoNode

	switch policy {
	case BestChildMostVisits:
		maxVisits := 0.0
		for _, child := range t.nodes[id].children {
			if v := t.nodes[child].visits; v > maxVisits {
				maxVisits = v
				best = child
			}
		}
	case BestChildWinRate:
		bestRate := -1.0
		for _, child := range t.nodes[id].children {
			n := &t.nodes[child]
			if n.visits == 0 {
				continue
			}
			if rate := n.wins / n.visits; rate > bestRate {
				bestRate = rate
				best = child
			}
		}
	}

	return best
}

// RootMove is the move recommendation query: the move leading to the
// root's most-visited child. Visit count is preferred over raw win rate
// because a high rate over a handful of visits is noise. Reports false if
// the root has no visited children.
func (t *Tree[M, S]) RootMove() (M, bool) {
	if best := t.BestChild(t.root, BestChildMostVisits); best != NoNode {
		return t.nodes[best].move, true
	}
	var zero M
	return zero, false
}

// Current evaluation of the position: the win rate of the recommended
// child, from the root player's perspective. NaN before any search.
func (t *Tree[M, S]) RootScore() float64 {
	if best := t.BestChild(t.root, BestChildMostVisits); best != NoNode {
		return t.nodes[best].wins / t.nodes[best].visits
	}
	return math.NaN()
}

// Pv is the principal variation: the sequence of best moves from the root,
// following the best-child policy until an unvisited or childless node.
func (t *Tree[M, S]) Pv(policy BestChildPolicy) []M {
	pv := make([]M, 0, t.maxdepth)
	id := t.root
	for len(t.nodes[id].children) > 0 {
		id = t.BestChild(id, policy)
		if id == NoNode {
			break
		}
		pv = append(pv, t.nodes[id].move)
	}
	return pv
}

// Total number of iterations ran during the last search
func (t *Tree[M, S]) Cycles() int {
	return t.cycles
}

// Maximum selection depth reached during the last search
func (t *Tree[M, S]) MaxDepth() int {
	return t.maxdepth
}

// Iterations per second of the last search
func (t *Tree[M, S]) Cps() uint32 {
	return t.cps
}
