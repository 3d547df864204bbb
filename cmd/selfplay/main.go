package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-uct/pkg/mcts"
	"go-uct/pkg/ttt"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	cycles := flag.Uint("cycles", 0, "iteration budget per move, overrides -movetime")
	movetime := flag.Int("movetime", 100, "thinking time per move, in milliseconds")
	seed := flag.Int64("seed", 0, "rng seed for reproducible runs, 0 picks one")
	verbose := flag.Bool("verbose", false, "log per-move search statistics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *seed != 0 {
		mcts.SetSeedGeneratorFn(func() int64 { return *seed })
	}

	limits := mcts.DefaultLimits()
	if *cycles > 0 {
		limits.SetCycles(uint32(*cycles))
	} else {
		limits.SetMovetime(*movetime)
	}

	var xWins, oWins, draws int
	for i := 1; i <= *games; i++ {
		outcome := playGame(limits)
		switch outcome.Winner() {
		case ttt.PlayerX:
			xWins++
		case ttt.PlayerO:
			oWins++
		default:
			draws++
		}
		log.Info().Int("game", i).Stringer("outcome", outcome).Msg("game over")
	}

	log.Info().
		Int("games", *games).
		Int("x_wins", xWins).
		Int("o_wins", oWins).
		Int("draws", draws).
		Msg("selfplay finished")
}

// One engine-vs-engine game on a shared tree: the subtree of every played
// move carries its statistics into the next search
func playGame(limits *mcts.Limits) mcts.Outcome {
	search := ttt.NewSearch(ttt.New())
	search.SetLimits(limits)

	listener := mcts.NewStatsListener[ttt.Move]()
	listener.OnStop(func(stats mcts.TreeStats[ttt.Move]) {
		log.Debug().
			Stringer("best", stats.BestMove).
			Int("cycles", stats.Cycles).
			Int("depth", stats.Maxdepth).
			Uint32("cps", stats.Cps).
			Float64("eval", stats.Eval).
			Stringer("stop", stats.StopReason).
			Msg("search finished")
	})
	search.SetListener(listener)

	for !search.Game().Terminated() {
		search.Search()
		move, ok := search.RootMove()
		if !ok {
			log.Fatal().Msg("search produced no move on a playable position")
		}
		if err := search.Play(move); err != nil {
			log.Fatal().Err(err).Stringer("move", move).Msg("illegal engine move")
		}
	}

	return search.Game().Outcome()
}
