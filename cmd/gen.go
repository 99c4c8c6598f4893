package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vojtechpavlu/Sudoku/internal/generator"
	"github.com/vojtechpavlu/Sudoku/internal/solver"
)

var (
	numPuzzles int
	emptyCount int
	seed       int64
	genTimeout time.Duration
	withSolve  bool
	outputFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles by building a complete random
board and emptying a chosen number of cells.

Examples:
  sudoku gen
  sudoku gen -n 5 --empty 60
  sudoku gen --empty 30 --seed 42 --solve`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().IntVarP(&emptyCount, "empty", "e", generator.DefaultEmptyCount, "Number of cells to empty, 0-80")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().BoolVar(&withSolve, "solve", false, "Also print the deterministic solution of each puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	g := generator.New(&generator.Options{Seed: seed, Timeout: genTimeout})
	s := solver.New(&solver.Options{Timeout: genTimeout})

	for i := 1; i <= numPuzzles; i++ {
		full, err := g.Generate()
		if err != nil {
			return fmt.Errorf("generating puzzle %d: %w", i, err)
		}
		log.WithFields(logrus.Fields{
			"puzzle":   i,
			"nodes":    g.Stats().Nodes,
			"duration": g.Stats().Duration,
		}).Debug("generated complete board")

		puzzle, err := g.EmptyValues(full, emptyCount)
		if err != nil {
			return fmt.Errorf("emptying puzzle %d: %w", i, err)
		}

		fmt.Fprintln(out, puzzle.Format())
		fmt.Fprintln(out, puzzle)
		fmt.Fprintln(out)

		if withSolve {
			solved, err := s.Solve(puzzle)
			if err != nil {
				return fmt.Errorf("solving puzzle %d: %w", i, err)
			}
			fmt.Fprintln(out, "Solution:")
			fmt.Fprintln(out, solved.Format())
		}
	}

	return nil
}
