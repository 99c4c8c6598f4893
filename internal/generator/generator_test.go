package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/vojtechpavlu/Sudoku/internal/board"
)

func TestGenerateProducesSolvedBoard(t *testing.T) {
	g := New(&Options{Seed: 12345, Timeout: 10 * time.Second})

	b, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v (nodes=%d dur=%v)", err, g.Stats().Nodes, g.Stats().Duration)
	}
	if !b.IsComplete() {
		t.Fatalf("generated board has %d empty cells", b.EmptyCount())
	}
	// Pure predicate: repeated evaluation must agree.
	for i := 0; i < 3; i++ {
		if !b.IsConsistent() {
			t.Fatalf("evaluation %d reported inconsistent", i)
		}
	}
	if !b.IsSolved() {
		t.Fatal("generated board is not solved")
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	first, err := New(&Options{Seed: 42}).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := New(&Options{Seed: 42}).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("identical seeds produced different boards:\n%s\n%s", first, second)
	}
}

func TestGenerateTimeout(t *testing.T) {
	g := New(&Options{Seed: 1, Timeout: time.Nanosecond})
	if _, err := g.Generate(); !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestEmptyValues(t *testing.T) {
	g := New(&Options{Seed: 7})
	full, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name      string
		empties   int
		wantEmpty int
		wantErr   error
	}{
		{"zero leaves board unchanged", 0, 0, nil},
		{"default carve", DefaultEmptyCount, DefaultEmptyCount, nil},
		{"maximum leaves one filled", 80, 80, nil},
		{"all cells rejected", 81, 0, ErrInvalidEmptyCount},
		{"negative rejected", -1, 0, ErrInvalidEmptyCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := g.EmptyValues(full, tt.empties)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("EmptyValues(%d) error = %v, want %v", tt.empties, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := out.EmptyCount(); got != tt.wantEmpty {
				t.Fatalf("EmptyValues(%d) left %d empty cells", tt.empties, got)
			}
			if tt.empties == 0 && out.String() != full.String() {
				t.Fatal("EmptyValues(0) modified the board")
			}
			// The input must never be touched.
			if !full.IsComplete() {
				t.Fatal("EmptyValues mutated its input board")
			}
		})
	}
}

func TestEmptyValuesMoreThanFilled(t *testing.T) {
	g := New(&Options{Seed: 7})
	b := board.New()
	b.SetForce(0, 0, 1)

	if _, err := g.EmptyValues(b, 5); !errors.Is(err, ErrInvalidEmptyCount) {
		t.Fatalf("expected ErrInvalidEmptyCount, got %v", err)
	}
	if _, err := g.EmptyValues(b, 1); err != nil {
		t.Fatalf("emptying the only filled cell failed: %v", err)
	}
}

func TestGeneratePuzzle(t *testing.T) {
	puzzle, solution, err := GeneratePuzzle(40)
	if err != nil {
		t.Fatalf("GeneratePuzzle failed: %v", err)
	}
	if !solution.IsSolved() {
		t.Fatal("solution board is not solved")
	}
	if got := puzzle.EmptyCount(); got != 40 {
		t.Fatalf("puzzle has %d empty cells, want 40", got)
	}
	// Every given of the puzzle must come from the solution.
	for _, c := range puzzle.FilledCells() {
		want, _ := solution.Field(c.X(), c.Y())
		if c.Value() != want.Value() {
			t.Fatalf("puzzle cell (%d, %d) = %d, solution holds %d", c.X(), c.Y(), c.Value(), want.Value())
		}
	}
}
