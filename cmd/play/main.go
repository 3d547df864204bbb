package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-uct/pkg/mcts"
	"go-uct/pkg/ttt"
)

func main() {
	movetime := flag.Int("movetime", 1000, "engine thinking time per move, in milliseconds")
	cycles := flag.Uint("cycles", 0, "fixed iteration budget per move, overrides -movetime")
	engine := flag.String("engine", "O", "side played by the engine: X, O or none")
	seed := flag.Int64("seed", 0, "rng seed for reproducible engine play, 0 picks one")
	verbose := flag.Bool("verbose", false, "log search statistics per engine move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	if *seed != 0 {
		mcts.SetSeedGeneratorFn(func() int64 { return *seed })
	}

	engineSide, err := parseSide(*engine)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -engine value")
	}

	limits := mcts.DefaultLimits()
	if *cycles > 0 {
		limits.SetCycles(uint32(*cycles))
	} else {
		limits.SetMovetime(*movetime)
	}

	search := ttt.NewSearch(ttt.New())
	search.SetLimits(limits)

	out := termenv.NewOutput(os.Stdout)
	in := bufio.NewScanner(os.Stdin)

	for {
		game := search.Game()
		fmt.Fprintln(out)
		printBoard(out, game.Board())
		fmt.Fprintln(out)

		if game.Terminated() {
			announce(out, game.Outcome())
			return
		}

		if game.Turn() == engineSide {
			search.Search()
			move, ok := search.RootMove()
			if !ok {
				log.Fatal().Msg("search produced no move on a playable position")
			}
			log.Info().
				Stringer("move", move).
				Int("cycles", search.Cycles()).
				Uint32("cps", search.Cps()).
				Float64("eval", search.RootScore()).
				Stringer("stop", search.StopReason()).
				Msg("engine move")

			fmt.Fprintf(out, "Engine (%s) plays %s\n",
				ttt.PlayerCell(engineSide), out.String(move.String()).Bold())
			if err := search.Play(move); err != nil {
				log.Fatal().Err(err).Msg("engine produced an illegal move")
			}
			continue
		}

		fmt.Fprintf(out, "Select cell for player %s as row, col: ", ttt.PlayerCell(game.Turn()))
		if !in.Scan() {
			return
		}

		move, err := parseMove(in.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := search.Play(move); err != nil {
			switch {
			case errors.Is(err, ttt.ErrOutOfRange):
				fmt.Fprintln(out, "Index out of range. Try again.")
			case errors.Is(err, ttt.ErrCellOccupied):
				fmt.Fprintln(out, "Cannot mark a non-empty cell. Try again.")
			default:
				fmt.Fprintln(out, err)
			}
		}
	}
}

func parseSide(s string) (mcts.Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return ttt.PlayerX, nil
	case "O":
		return ttt.PlayerO, nil
	case "NONE":
		return mcts.NoPlayer, nil
	}
	return mcts.NoPlayer, fmt.Errorf("unknown side %q", s)
}

func parseMove(input string) (ttt.Move, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return ttt.Move{}, errors.New("enter two numbers separated by a comma, like: 0, 2")
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ttt.Move{}, errors.New("enter valid non-negative numbers separated by a comma")
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ttt.Move{}, errors.New("enter valid non-negative numbers separated by a comma")
	}
	return ttt.Move{Row: row, Col: col}, nil
}

func printBoard(out *termenv.Output, b ttt.Board) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell, _ := b.Cell(row, col)
			mark := out.String(cell.String())
			switch cell {
			case ttt.X:
				mark = mark.Foreground(out.Color("1")).Bold()
			case ttt.O:
				mark = mark.Foreground(out.Color("4")).Bold()
			}
			fmt.Fprintf(out, " %s ", mark)
			if col < 2 {
				fmt.Fprint(out, "|")
			}
		}
		fmt.Fprintln(out)
		if row < 2 {
			fmt.Fprintln(out, "-----------")
		}
	}
}

func announce(out *termenv.Output, outcome mcts.Outcome) {
	switch outcome.Winner() {
	case ttt.PlayerX:
		fmt.Fprintln(out, out.String("Game over, X won!").Bold())
	case ttt.PlayerO:
		fmt.Fprintln(out, out.String("Game over, O won!").Bold())
	default:
		fmt.Fprintln(out, out.String("Game over, it's a tie.").Bold())
	}
}
