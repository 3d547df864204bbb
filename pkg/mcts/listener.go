package mcts

// Snapshot of the tree statistics handed to listener callbacks
type TreeStats[M MoveLike] struct {
	Maxdepth   int
	Cycles     int
	TimeMs     int
	Cps        uint32
	Size       int
	BestMove   M
	HasMove    bool
	Eval       float64
	StopReason StopReason
}

// Listener function callback, receives current tree statistics, like
// max depth of the tree and the number of iterations so far
type ListenerFunc[M MoveLike] func(TreeStats[M])

// StatsListener lets a front end observe a running search without owning
// the loop: depth increases, every N cycles, and the final stop.
type StatsListener[M MoveLike] struct {
	// called when 'max depth' increases
	onDepth ListenerFunc[M]

	// called every N full iterations
	onCycle ListenerFunc[M]
	nCycles int // call 'onCycle' every N cycles

	// called when the search stops (either by limiter or 'stop' signal)
	onStop ListenerFunc[M]
}

func NewStatsListener[M MoveLike]() StatsListener[M] {
	return StatsListener[M]{nCycles: 1}
}

// Attach new on max depth change callback
func (listener *StatsListener[M]) OnDepth(onDepth ListenerFunc[M]) *StatsListener[M] {
	listener.onDepth = onDepth
	return listener
}

// Attach new on iteration callback; every invocation evaluates the best
// child, so set a sensible interval before using this on hot searches
func (listener *StatsListener[M]) OnCycle(onCycle ListenerFunc[M]) *StatsListener[M] {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener[M]) SetCycleInterval(n int) *StatsListener[M] {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback, called once when the search stops,
// makes 'StopReason' available in the stats
func (listener *StatsListener[M]) OnStop(onStop ListenerFunc[M]) *StatsListener[M] {
	listener.onStop = onStop
	return listener
}

func (t *Tree[M, S]) SetListener(listener StatsListener[M]) {
	if listener.nCycles < 1 {
		listener.nCycles = 1
	}
	*t.listener = listener
}

func (t *Tree[M, S]) ResetListener() {
	t.listener.OnCycle(nil).OnDepth(nil).OnStop(nil)
}

func (t *Tree[M, S]) invokeListener(f ListenerFunc[M]) {
	if f != nil {
		f(t.stats())
	}
}

func (t *Tree[M, S]) stats() TreeStats[M] {
	move, ok := t.RootMove()
	return TreeStats[M]{
		Maxdepth:   t.maxdepth,
		Cycles:     t.cycles,
		TimeMs:     int(t.limiter.Elapsed()),
		Cps:        t.cps,
		Size:       t.Size(),
		BestMove:   move,
		HasMove:    ok,
		Eval:       t.RootScore(),
		StopReason: t.limiter.StopReason(),
	}
}
