package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/hanoi/cas"
	"github.com/timewinder-dev/hanoi/check"
)

var (
	checkDisks  int
	keepGoing   bool
	detailsFlag bool
	verboseFlag bool
)

var checkCmd = &cobra.Command{
	Use:   "check [CONFIG]",
	Short: "Run the solvers and check their histories",
	Args:  cobra.MaximumNArgs(1),
	Run:   checkCommand,
}

func init() {
	checkCmd.Flags().IntVar(&checkDisks, "disks", 0, "Number of disks (overrides the config file)")
	checkCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Keep checking after reporting the first violation")
	checkCmd.Flags().BoolVar(&detailsFlag, "details", false, "Draw every state of the trace when property violations occur")
	checkCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "Report progress while checking")
}

func checkCommand(cmd *cobra.Command, args []string) {
	cfg := check.DefaultConfig()
	if len(args) > 0 {
		var err error
		cfg, err = check.LoadConfigFromFile(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't load config file")
		}
	}
	if checkDisks > 0 {
		cfg.Puzzle.Disks = checkDisks
	}
	cacheSize := cfg.Puzzle.CacheSize
	if cacheSize <= 0 {
		cacheSize = cas.DefaultCacheSize
	}
	cache := cas.NewLRUCache(cas.NewMemoryCAS(), cacheSize)

	ch, err := cfg.BuildChecker(cache)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't build checker for config")
	}
	ch.KeepGoing = keepGoing
	ch.ShowDetails = detailsFlag
	if verboseFlag {
		ch.Reporter = &check.ColorReporter{Writer: os.Stderr}
	}

	fmt.Fprintln(os.Stderr, color.Cyan.Sprint("Running history checker..."))

	result, err := ch.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Error during checking")
	}
	if result == nil {
		log.Fatal().Msg("Checking failed to produce a result")
	}
	stats := cache.Stats()
	log.Debug().Int("hits", stats.Hits).Int("misses", stats.Misses).Int("cached", stats.Size).Msg("State cache")

	// Print violations if any occurred
	if !result.Success {
		if keepGoing {
			fmt.Fprint(os.Stderr, check.FormatAllViolations(result.Violations))
		} else if len(result.Violations) > 0 {
			fmt.Fprint(os.Stderr, check.FormatViolation(result.Violations[0]))
		}
	}

	// Always print statistics at the bottom
	fmt.Fprint(os.Stderr, check.FormatStatistics(result.Statistics))

	if result.Success {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, color.Green.Sprint("✓ Checking completed successfully - all properties satisfied!"))
		return
	}
	os.Exit(1)
}
