// Package search implements the recursive backtracking engine shared by
// the generator and the solver. The two only differ in candidate order:
// the generator supplies a rand source to shuffle candidates at every
// branch cell, the solver runs with a nil source and tries candidates in
// ascending order for deterministic results.
package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/vojtechpavlu/Sudoku/internal/board"
)

// Stats captures the work done by one engine run.
type Stats struct {
	Nodes    int // assignments tried, including ones later undone
	Duration time.Duration
}

// Engine runs a depth-first completion search over a board it exclusively
// owns for the duration of a call. An Engine is not safe for concurrent
// use when constructed with a rand source.
type Engine struct {
	rng *rand.Rand
}

// New creates an engine. A nil rng means candidates are tried in ascending
// order; otherwise each branch cell's candidate list is shuffled uniformly.
func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Complete fills every empty cell of b in place. It returns the completed
// board and true at the first full assignment found, with every trial
// value of that winning path still on the board. When every branch is
// exhausted, or ctx is done, it returns nil and false with b restored to
// its starting state.
//
// Branch cells are visited in raster order, columns outer and rows inner,
// so the first empty cell along that traversal is always decided first.
func (e *Engine) Complete(ctx context.Context, b *board.Board) (*board.Board, Stats, bool) {
	start := time.Now()
	var st Stats
	solved, found := e.descend(ctx, b, &st)
	st.Duration = time.Since(start)
	return solved, st, found
}

// descend is one recursion frame of the search: find the branch cell, try
// its candidates, undo on failure. A found solution is propagated through
// every enclosing frame without executing their undo step, so the board
// returned to the outermost caller is exactly the one in place at the
// moment of discovery.
func (e *Engine) descend(ctx context.Context, b *board.Board, st *Stats) (*board.Board, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	x, y, ok := nextEmpty(b)
	if !ok {
		// Every cell was checked at insertion time, so a full board is
		// consistent and therefore solved.
		return b, true
	}

	values := b.PossibleValues(x, y)
	if e.rng != nil {
		e.rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
	}

	for _, v := range values {
		st.Nodes++
		b.SetForce(x, y, v)
		if solved, found := e.descend(ctx, b, st); found {
			return solved, true
		}
		// The trial value led nowhere; it must not leak into the next
		// candidate or a sibling branch.
		b.SetForce(x, y, board.EmptyValue)
	}

	return nil, false
}

// nextEmpty scans columns left to right, top to bottom within each column,
// and returns the coordinates of the first empty cell.
func nextEmpty(b *board.Board) (int, int, bool) {
	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			if c, _ := b.Field(x, y); c.IsEmpty() {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
