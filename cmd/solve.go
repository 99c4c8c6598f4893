package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vojtechpavlu/Sudoku/internal/board"
	"github.com/vojtechpavlu/Sudoku/internal/solver"
)

var solveTimeout time.Duration

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a Sudoku puzzle",
		Long: `Solve a puzzle read from a file, or from stdin when no file is given.

The board is an 81-character string in row-major order, with '.' or '0'
for empty cells. Newlines between rows are ignored.

Examples:
  sudoku solve puzzle.txt
  echo '53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79' | sudoku solve`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "Solve timeout")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := readBoard(args)
	if err != nil {
		return err
	}

	s := solver.New(&solver.Options{Timeout: solveTimeout})
	solved, err := s.Solve(b)
	if errors.Is(err, solver.ErrNoSolution) {
		log.WithField("board", b.String()).Warn("puzzle is unsolvable")
		return err
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"nodes":    s.Stats().Nodes,
		"duration": s.Stats().Duration,
	}).Debug("solved puzzle")

	fmt.Println(solved.Format())
	return nil
}

// readBoard parses the puzzle from the file argument or stdin. The input
// must reduce to exactly 81 board characters after dropping whitespace.
func readBoard(args []string) (*board.Board, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}

	b, err := board.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing puzzle: %w", err)
	}
	return b, nil
}
