// Package generator produces complete, rule-consistent Sudoku boards and
// turns them into puzzles by emptying random cells.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vojtechpavlu/Sudoku/internal/board"
	"github.com/vojtechpavlu/Sudoku/internal/search"
)

// Valid bounds for the number of cells to empty. Emptying all 81 cells is
// rejected: a puzzle must keep at least one given.
const (
	MinEmptyCount     = 0
	MaxEmptyCount     = 80
	DefaultEmptyCount = 45
)

var (
	ErrGenerationFailed  = errors.New("failed to generate a complete board")
	ErrInvalidEmptyCount = errors.New("empty count must be between 0 and 80")
)

// Generator produces complete, rule-consistent boards.
type Generator interface {
	Generate() (*board.Board, error)
}

// BacktrackingGenerator fills an empty board with the backtracking engine
// in randomized candidate order, so repeated runs yield different boards
// unless seeded identically.
type BacktrackingGenerator struct {
	options *Options
	rng     *rand.Rand
	stats   search.Stats
}

// New creates a generator with the given options.
func New(options *Options) *BacktrackingGenerator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &BacktrackingGenerator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a complete, consistent board from scratch.
// An empty 9×9 grid always admits a solution, but exhaustion is still a
// reachable outcome (an expired timeout, for one) and is reported as
// ErrGenerationFailed.
func (g *BacktrackingGenerator) Generate() (*board.Board, error) {
	ctx, cancel := g.makeContext()
	defer cancel()

	engine := search.New(g.rng)
	solved, st, found := engine.Complete(ctx, board.New())
	g.stats = st
	if !found {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		return nil, ErrGenerationFailed
	}
	return solved, nil
}

// EmptyValues returns a copy of b with empties of its filled cells, chosen
// uniformly at random without replacement, reset to empty. The input board
// is never modified. Returns ErrInvalidEmptyCount if empties is outside
// [0, 80] or exceeds the number of filled cells.
func (g *BacktrackingGenerator) EmptyValues(b *board.Board, empties int) (*board.Board, error) {
	if empties < MinEmptyCount || empties > MaxEmptyCount {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEmptyCount, empties)
	}

	out := b.Clone()
	filled := out.FilledCells()
	if empties > len(filled) {
		return nil, fmt.Errorf("%w: %d cells requested but only %d are filled", ErrInvalidEmptyCount, empties, len(filled))
	}

	for i, idx := range g.rng.Perm(len(filled)) {
		if i == empties {
			break
		}
		c := filled[idx]
		out.SetForce(c.X(), c.Y(), board.EmptyValue)
	}
	return out, nil
}

// Stats returns the engine statistics of the most recent Generate call.
func (g *BacktrackingGenerator) Stats() search.Stats {
	return g.stats
}

// makeContext derives the deadline context for one generation run.
func (g *BacktrackingGenerator) makeContext() (context.Context, context.CancelFunc) {
	if g.options.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), g.options.Timeout)
}

// GeneratePuzzle is a convenience function: it generates a complete board
// and empties emptyCount of its cells. Returns the puzzle together with
// the full solution it was carved from.
func GeneratePuzzle(emptyCount int) (puzzle, solution *board.Board, err error) {
	g := New(DefaultOptions())
	solution, err = g.Generate()
	if err != nil {
		return nil, nil, err
	}
	puzzle, err = g.EmptyValues(solution, emptyCount)
	if err != nil {
		return nil, nil, err
	}
	return puzzle, solution, nil
}
