package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/hanoi/check"
	"github.com/timewinder-dev/hanoi/render"
	"github.com/timewinder-dev/hanoi/solver"
)

var (
	solveDisks   int
	strategyFlag string
	quietFlag    bool
	maxDisksFlag int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the puzzle with one of the automatic strategies",
	Args:  cobra.NoArgs,
	Run:   solveCommand,
}

func init() {
	solveCmd.Flags().StringVar(&strategyFlag, "strategy", string(solver.Iterative), "Strategy to use (iterative, recursive, mutual, worklist)")
	solveCmd.Flags().IntVar(&solveDisks, "disks", check.DefaultDisks, "Number of disks")
	solveCmd.Flags().IntVar(&maxDisksFlag, "max-disks", 0, "Refuse disk counts above this limit")
	solveCmd.Flags().BoolVar(&quietFlag, "quiet", false, "Only print the moves, not every state")
}

func solveCommand(cmd *cobra.Command, args []string) {
	strategy, err := solver.ParseStrategy(strategyFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't pick a strategy")
	}
	if strategy == solver.Manual {
		log.Fatal().Msg("Use the play command to solve the puzzle yourself")
	}
	s, err := solver.New(strategy, solver.Config{MaxDisks: maxDisksFlag})
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't build solver")
	}
	h, err := s.Solve(solveDisks)
	if err != nil {
		log.Fatal().Err(err).Int("disks", solveDisks).Msg("Couldn't solve")
	}
	log.Debug().Str("run", h.ID).Str("strategy", string(strategy)).Int("moves", h.MoveCount()).Msg("Solved")

	if quietFlag {
		for i, m := range h.Moves {
			fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, m)
		}
	} else {
		r := render.New(os.Stdout)
		r.Color = true
		if err := r.History(h); err != nil {
			log.Fatal().Err(err).Msg("Couldn't draw the history")
		}
	}
	fmt.Fprintln(os.Stderr, color.Green.Sprintf("Solved %d disks in %d moves with the %s strategy", solveDisks, h.MoveCount(), strategy))
}
