// Package solver completes partially-filled Sudoku boards.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vojtechpavlu/Sudoku/internal/board"
	"github.com/vojtechpavlu/Sudoku/internal/search"
)

var (
	ErrNoSolution = errors.New("puzzle has no solution")
	ErrTimeout    = errors.New("solver timeout exceeded")
)

// Solver completes a partially-filled board. Implementations must not
// mutate the caller's board; they work on a private copy and return a new
// board. Alternative strategies, such as constraint-propagation solvers,
// implement the same interface.
type Solver interface {
	Solve(b *board.Board) (*board.Board, error)
}

// Options configures solving behavior.
type Options struct {
	Timeout time.Duration // Timeout limits one solve run (0 = unbounded)
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{Timeout: 10 * time.Second}
}

// BacktrackingSolver runs the backtracking engine in deterministic
// ascending candidate order, so the same input always yields the same
// solution.
type BacktrackingSolver struct {
	options *Options
	stats   search.Stats
}

// New creates a solver with the given options.
func New(options *Options) *BacktrackingSolver {
	if options == nil {
		options = DefaultOptions()
	}
	return &BacktrackingSolver{options: options}
}

// Solve returns the first complete, consistent completion of b found in
// deterministic order. The input board is never modified.
//
// A board that already violates row, column, or box constraints cannot be
// completed and reports ErrNoSolution up front; the engine alone would not
// notice pre-existing duplicates, since it only validates its own
// insertions. An exhausted search likewise reports ErrNoSolution — not
// every partial board is solvable, and callers are expected to recover.
func (s *BacktrackingSolver) Solve(b *board.Board) (*board.Board, error) {
	work := b.Clone()
	if !work.IsConsistent() {
		return nil, fmt.Errorf("%w: board violates constraints before search", ErrNoSolution)
	}

	ctx, cancel := s.makeContext()
	defer cancel()

	engine := search.New(nil)
	solved, st, found := engine.Complete(ctx, work)
	s.stats = st
	if !found {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, ErrNoSolution
	}
	return solved, nil
}

// Stats returns the engine statistics of the most recent Solve call.
func (s *BacktrackingSolver) Stats() search.Stats {
	return s.stats
}

// makeContext derives the deadline context for one solve run.
func (s *BacktrackingSolver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.options.Timeout)
}
