// Package board models a 9×9 Sudoku grid as 81 coordinate-carrying cells
// and provides the rule predicates the search algorithms build on.
package board

import "fmt"

// Special values and dimensions.
const (
	EmptyValue = 0 // value of an unfilled cell
	Size       = 9 // cells per row, column, and box
	BoxSize    = 3 // edge length of a 3×3 box
	CellCount  = 81
)

// Cell is one field of the grid. Its coordinates are fixed at creation;
// only the value changes over a cell's lifetime, and only through the
// owning Board.
type Cell struct {
	x, y  int
	value int
}

// NewCell creates a cell at column x, row y holding the given value.
// Returns ErrOutOfRange for coordinates outside [0, 8] and ErrInvalidValue
// for values outside [0, 9].
func NewCell(x, y, value int) (Cell, error) {
	if !inRange(x, y) {
		return Cell{}, fmt.Errorf("%w: coordinates (%d, %d)", ErrOutOfRange, x, y)
	}
	if !isValidValue(value) {
		return Cell{}, fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}
	return Cell{x: x, y: y, value: value}, nil
}

// X returns the cell's column index.
func (c Cell) X() int { return c.x }

// Y returns the cell's row index.
func (c Cell) Y() int { return c.y }

// Value returns the cell's current value, EmptyValue for an unfilled cell.
func (c Cell) Value() int { return c.value }

// IsEmpty reports whether the cell holds no value yet.
func (c Cell) IsEmpty() bool { return c.value == EmptyValue }

// Board is a 9×9 Sudoku grid. It owns exactly 81 cells whose coordinates
// cover the index space exactly once, which FromCells enforces at
// construction. A Board is mutated in place during search and must not be
// shared across concurrent searches; use Clone to hand out private copies.
type Board struct {
	cells [CellCount]Cell
}

// New creates a fully empty board.
func New() *Board {
	b := &Board{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.cells[index(x, y)] = Cell{x: x, y: y, value: EmptyValue}
		}
	}
	return b
}

// FromCells creates a board from exactly 81 cells. The cell coordinates
// must form a bijection onto the 9×9 index space; anything else returns
// ErrInvalidGrid.
func FromCells(cells []Cell) (*Board, error) {
	if len(cells) != CellCount {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidGrid, CellCount, len(cells))
	}

	b := &Board{}
	var seen [CellCount]bool
	for _, c := range cells {
		if !inRange(c.x, c.y) {
			return nil, fmt.Errorf("%w: coordinates (%d, %d) out of bounds", ErrInvalidGrid, c.x, c.y)
		}
		pos := index(c.x, c.y)
		if seen[pos] {
			return nil, fmt.Errorf("%w: duplicate coordinates (%d, %d)", ErrInvalidGrid, c.x, c.y)
		}
		seen[pos] = true
		b.cells[pos] = c
	}
	return b, nil
}

// Clone creates an independent deep copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Field returns the cell at column x, row y.
// Returns ErrOutOfRange if either coordinate is outside [0, 8].
func (b *Board) Field(x, y int) (Cell, error) {
	if !inRange(x, y) {
		return Cell{}, fmt.Errorf("%w: coordinates (%d, %d)", ErrOutOfRange, x, y)
	}
	return b.cells[index(x, y)], nil
}

// Set places a value at column x, row y. A value of EmptyValue clears the
// cell. Returns ErrOutOfRange for bad coordinates and ErrInvalidValue for
// values outside [0, 9]. Rule consistency is not checked here; callers
// validate placements with CanBeAt first.
func (b *Board) Set(x, y, value int) error {
	if !inRange(x, y) {
		return fmt.Errorf("%w: coordinates (%d, %d)", ErrOutOfRange, x, y)
	}
	if !isValidValue(value) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, value)
	}
	b.cells[index(x, y)].value = value
	return nil
}

// SetForce places a value without validation checks.
// Use only when coordinates and value are known to be in range.
func (b *Board) SetForce(x, y, value int) {
	b.cells[index(x, y)].value = value
}

// Clear resets the cell at column x, row y to empty.
// No harm is done clearing an already empty cell.
func (b *Board) Clear(x, y int) error {
	if !inRange(x, y) {
		return fmt.Errorf("%w: coordinates (%d, %d)", ErrOutOfRange, x, y)
	}
	b.cells[index(x, y)].value = EmptyValue
	return nil
}

// Row returns copies of the 9 cells in row y, or nil if y is out of range.
func (b *Board) Row(y int) []Cell {
	if y < 0 || y >= Size {
		return nil
	}
	row := make([]Cell, Size)
	for x := 0; x < Size; x++ {
		row[x] = b.cells[index(x, y)]
	}
	return row
}

// Column returns copies of the 9 cells in column x, or nil if x is out of
// range.
func (b *Board) Column(x int) []Cell {
	if x < 0 || x >= Size {
		return nil
	}
	col := make([]Cell, Size)
	for y := 0; y < Size; y++ {
		col[y] = b.cells[index(x, y)]
	}
	return col
}

// Box returns copies of the 9 cells of the 3×3 box containing (x, y), or
// nil if the coordinates are out of range. The box origin is derived as
// (x/3*3, y/3*3).
func (b *Board) Box(x, y int) []Cell {
	if !inRange(x, y) {
		return nil
	}
	ox, oy := (x/BoxSize)*BoxSize, (y/BoxSize)*BoxSize
	box := make([]Cell, 0, Size)
	for dy := 0; dy < BoxSize; dy++ {
		for dx := 0; dx < BoxSize; dx++ {
			box = append(box, b.cells[index(ox+dx, oy+dy)])
		}
	}
	return box
}

// EmptyCells returns copies of all unfilled cells in storage order.
func (b *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, CellCount)
	for _, c := range b.cells {
		if c.IsEmpty() {
			cells = append(cells, c)
		}
	}
	return cells
}

// FilledCells returns copies of all filled cells in storage order.
func (b *Board) FilledCells() []Cell {
	cells := make([]Cell, 0, CellCount)
	for _, c := range b.cells {
		if !c.IsEmpty() {
			cells = append(cells, c)
		}
	}
	return cells
}

// EmptyCount returns the number of unfilled cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, c := range b.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	return CellCount - b.EmptyCount()
}

// index transforms coordinates into a linear storage position.
// Callers guarantee the coordinates are in range.
func index(x, y int) int {
	return Size*y + x
}

// inRange reports whether both coordinates are on the board.
func inRange(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// isValidValue reports whether a value is in the cell domain [0, 9].
func isValidValue(value int) bool {
	return value >= EmptyValue && value <= Size
}
