// Package cmd wires the command-line surface around the core packages.
// The core itself performs no I/O; everything user-facing lives here.
package cmd

import (
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	verbose    bool
	cpuProfile bool

	// prof holds the running profiler between PersistentPreRun and
	// PersistentPostRun; nil when profiling is off.
	prof interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate and solve 9×9 Sudoku puzzles",
	Long: `A generator and solver for classic 9×9 Sudoku.

The generator produces a complete, rule-consistent board with randomized
backtracking and empties a chosen number of cells to form a puzzle. The
solver completes a partially-filled board deterministically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(logrus.InfoLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		if cpuProfile {
			prof = profile.Start(profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if prof != nil {
			prof.Stop()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "profile", false, "Write a CPU profile to the current directory")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
