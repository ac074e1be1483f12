package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/hanoi/cas"
	"github.com/timewinder-dev/hanoi/check"
	"github.com/timewinder-dev/hanoi/console"
	"github.com/timewinder-dev/hanoi/render"
	"github.com/timewinder-dev/hanoi/solver"
)

var (
	playDisks  int
	askDisks   bool
	verifyFlag bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve the puzzle yourself",
	Args:  cobra.NoArgs,
	Run:   playCommand,
}

func init() {
	playCmd.Flags().IntVar(&playDisks, "disks", check.DefaultDisks, "Number of disks")
	playCmd.Flags().BoolVar(&askDisks, "ask", false, "Ask for the number of disks before starting")
	playCmd.Flags().BoolVar(&verifyFlag, "verify", false, "Check the finished game and report any revisited positions")
}

func playCommand(cmd *cobra.Command, args []string) {
	prompt := console.NewPrompter(os.Stdin, os.Stdout)
	prompt.SetColor(true)

	fmt.Fprintln(os.Stdout, color.Cyan.Sprint("\n===============================\n\nTower of Hanoi\n\n==============================="))
	n := playDisks
	if askDisks {
		var err error
		n, err = prompt.ReadDiskCount()
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't read the disk count")
		}
	}

	store := cas.NewMemoryCAS()
	manual := &solver.ManualSolver{
		Config: solver.Config{Source: prompt},
		Store:  store,
	}
	h, err := manual.Solve(n)
	if errors.Is(err, console.ErrNoInput) {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stdout, "Gave up after %d moves.\n", h.MoveCount())
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Manual session failed")
	}

	fmt.Fprintln(os.Stdout)
	r := render.New(os.Stdout)
	r.Color = true
	if err := r.State(h.Last()); err != nil {
		log.Fatal().Err(err).Msg("Couldn't draw the final state")
	}
	fmt.Fprintln(os.Stdout, color.Green.Sprintf("congratulations! you have won in %d moves", h.Len()))
	log.Debug().
		Int("moves", h.MoveCount()).
		Int("rejected", manual.Rejected).
		Int("revisits", manual.Revisits).
		Int("unique", store.Len()).
		Msg("Session finished")

	if !verifyFlag {
		return
	}
	ch := &check.Checker{CAS: store, KeepGoing: true}
	if err := ch.CheckHistory(string(solver.Manual), h, true); err != nil {
		log.Fatal().Err(err).Msg("Error while checking the game")
	}
	for _, v := range ch.Violations() {
		fmt.Fprintln(os.Stdout, color.Yellow.Sprintf("%s: %s", v.PropertyName, v.Message))
	}
	if len(ch.Violations()) == 0 {
		fmt.Fprintln(os.Stdout, color.Green.Sprint("✓ A perfect game!"))
	}
}
