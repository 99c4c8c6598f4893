package solver

import (
	"errors"
	"testing"
	"time"

	"github.com/vojtechpavlu/Sudoku/internal/board"
	"github.com/vojtechpavlu/Sudoku/internal/generator"
)

// The classic puzzle with a unique solution, row-major.
const samplePuzzle = "" +
	"53..7...." +
	"6..195..." +
	".98....6." +
	"8...6...3" +
	"4..8.3..1" +
	"7...2...6" +
	".6....28." +
	"...419..5" +
	"....8..79"

const sampleSolution = "" +
	"534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

func mustParse(t *testing.T, s string) *board.Board {
	t.Helper()
	b, err := board.Parse(s)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return b
}

func TestSolveKnownPuzzle(t *testing.T) {
	in := mustParse(t, samplePuzzle)
	s := New(nil)

	out, err := s.Solve(in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, s.Stats().Nodes, s.Stats().Duration)
	}
	// The puzzle has exactly one solution, so the deterministic search
	// must reproduce it.
	if out.String() != sampleSolution {
		t.Fatalf("wrong solution:\n got %s\nwant %s", out.String(), sampleSolution)
	}
	// The caller's board stays untouched.
	if in.String() != samplePuzzle {
		t.Fatalf("Solve mutated its input: %s", in.String())
	}
}

func TestSolveSolvedBoardReturnsItUnchanged(t *testing.T) {
	in := mustParse(t, sampleSolution)

	out, err := New(nil).Solve(in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.String() != sampleSolution {
		t.Fatalf("already solved board changed:\n got %s\nwant %s", out.String(), sampleSolution)
	}
}

func TestSolveInconsistentBoard(t *testing.T) {
	b := board.New()
	b.SetForce(0, 0, 5)
	b.SetForce(1, 0, 5)
	if b.IsConsistent() {
		t.Fatal("setup board must be inconsistent")
	}

	if _, err := New(nil).Solve(b); !errors.Is(err, ErrNoSolution) {
		t.Fatalf("expected ErrNoSolution, got %v", err)
	}
}

func TestSolveUnsolvableConsistentBoard(t *testing.T) {
	// Row 0 holds 2-9 and a 1 blocks the first column, so cell (0, 0)
	// admits no value even though no rule is violated yet.
	b := board.New()
	for x := 1; x < board.Size; x++ {
		b.SetForce(x, 0, x+1)
	}
	b.SetForce(0, 1, 1)
	if !b.IsConsistent() {
		t.Fatal("setup board must be consistent")
	}

	if _, err := New(nil).Solve(b); !errors.Is(err, ErrNoSolution) {
		t.Fatalf("expected ErrNoSolution, got %v", err)
	}
}

func TestSolveEmptyBoardDeterministic(t *testing.T) {
	first, err := New(nil).Solve(board.New())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !first.IsSolved() {
		t.Fatal("solved board is not solved")
	}
	// Ascending candidate order always assigns 1 to the first cell on
	// the first successful path.
	if c, _ := first.Field(0, 0); c.Value() != 1 {
		t.Fatalf("Field(0, 0) = %d, want 1", c.Value())
	}

	second, err := New(nil).Solve(board.New())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if first.String() != second.String() {
		t.Fatal("deterministic solver produced different boards for the same input")
	}
}

func TestSolveTimeout(t *testing.T) {
	s := New(&Options{Timeout: time.Nanosecond})
	if _, err := s.Solve(board.New()); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestGenerateEmptySolveRoundTrip(t *testing.T) {
	g := generator.New(&generator.Options{Seed: 99})
	full, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	puzzle, err := g.EmptyValues(full, generator.DefaultEmptyCount)
	if err != nil {
		t.Fatalf("EmptyValues failed: %v", err)
	}

	solved, err := New(nil).Solve(puzzle)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// With this many cells removed the puzzle may admit several
	// solutions, so only solvedness is asserted, not equality with the
	// original board.
	if !solved.IsSolved() {
		t.Fatal("round-tripped board is not solved")
	}
	// The givens must survive into the solution.
	for _, c := range puzzle.FilledCells() {
		got, _ := solved.Field(c.X(), c.Y())
		if got.Value() != c.Value() {
			t.Fatalf("given (%d, %d) = %d changed to %d", c.X(), c.Y(), c.Value(), got.Value())
		}
	}
}
