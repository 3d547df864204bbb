package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in the UCT formula, higher values increase
// exploration while lower values increase exploitation. The theoretical
// value for win-rate rewards is sqrt(2), new trees pick this up at
// construction time.
var ExplorationParam float64 = math.Sqrt2

// Set the exploration parameter used in the UCT formula
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the tree's random number
// generator, by default uses current time in nanoseconds. Fix the seed to
// make whole search runs reproducible.
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
