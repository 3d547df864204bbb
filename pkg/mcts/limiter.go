package mcts

import "context"

// StopReason reports which limits ended the search, as a bit set since
// several can trip on the same iteration
type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1  // stopped by Stop() or context cancellation
	StopMovetime  StopReason = 2  // time limit reached
	StopNodes     StopReason = 4  // node limit reached
	StopDepth     StopReason = 8  // depth limit reached
	StopCycles    StopReason = 16 // cycle limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
		{StopDepth, "Depth"},
		{StopCycles, "Cycles"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}
	return result
}

// Limiter decides when a search loop must stop: explicit stop signal,
// context cancellation, or any of the configured Limits.
type Limiter struct {
	limits *Limits
	timer  *timer
	stop   bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags and restart its clock, called on search setup
func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop = false
	l.reason = StopNone
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Attach a context, enabling cancellation through it
func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

// Set the stop signal, will cause the search to exit
func (l *Limiter) SetStop(v bool) {
	l.stop = v
}

// Get the stop signal, checking the attached context
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop = true
	default:
	}
	return l.stop
}

// Elapsed time since the last Reset, in milliseconds (at least 1)
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.timer.Deltatime())
}

// The limits exceeded by the current counters
func (l *Limiter) limitMask(size, depth, cycles uint32) StopReason {
	mask := StopNone
	if l.Stop() {
		mask |= StopInterrupt
	}
	if l.limits.Infinite {
		return mask
	}

	if l.timer.IsEnd() {
		mask |= StopMovetime
	}
	if l.limits.Nodes <= size {
		mask |= StopNodes
	}
	if l.limits.Depth <= int(depth) {
		mask |= StopDepth
	}
	if l.limits.Cycles <= cycles {
		mask |= StopCycles
	}
	return mask
}

// Whether the search may continue, called on every iteration
func (l *Limiter) Ok(size, depth, cycles uint32) bool {
	return l.limitMask(size, depth, cycles) == StopNone
}

// Evaluate and record the stop reason, called once after the search ends
func (l *Limiter) EvaluateStopReason(size, depth, cycles uint32) {
	l.reason = l.limitMask(size, depth, cycles)
}

// The reason why the search was stopped, valid after the search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}

// Set the search limits for this tree
func (t *Tree[M, S]) SetLimits(limits *Limits) {
	t.limiter.SetLimits(limits)
}

func (t *Tree[M, S]) Limits() *Limits {
	return t.limiter.Limits()
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithCancel(context.Background())
//
//	tree.SetContext(ctx)
//	go func() {
//	    time.Sleep(2 * time.Second)
//	    cancel() // Cancel the search after 2 seconds
//	}()
//
//	tree.Search()
func (t *Tree[M, S]) SetContext(ctx context.Context) {
	t.limiter.SetContext(ctx)
}

// Request the current search to stop after the running iteration
func (t *Tree[M, S]) Stop() {
	t.limiter.SetStop(true)
}

// Get the reason why the last search was stopped
func (t *Tree[M, S]) StopReason() StopReason {
	return t.limiter.StopReason()
}
