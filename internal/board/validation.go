package board

import "errors"

var (
	ErrInvalidGrid  = errors.New("grid must cover the 9×9 index space with exactly 81 cells")
	ErrOutOfRange   = errors.New("coordinates out of bounds")
	ErrInvalidValue = errors.New("value must be between 0-9")
)

// CanBeAt reports whether placing value at column x, row y would keep the
// board rule-consistent, i.e. the value does not already occur in the
// cell's row, column, or 3×3 box. The probed cell is expected to be empty;
// for checking an already placed value use IsConsistent, which excludes
// the probed cell itself from the comparison.
func (b *Board) CanBeAt(value, x, y int) bool {
	if !inRange(x, y) || value < 1 || value > Size {
		return false
	}
	for _, peer := range b.Row(y) {
		if peer.value == value {
			return false
		}
	}
	for _, peer := range b.Column(x) {
		if peer.value == value {
			return false
		}
	}
	for _, peer := range b.Box(x, y) {
		if peer.value == value {
			return false
		}
	}
	return true
}

// IsConsistent reports whether every filled cell agrees with its row,
// column, and box peers. The probed cell is excluded from its own peer set
// by identity, so a legally placed value never conflicts with itself.
func (b *Board) IsConsistent() bool {
	for _, c := range b.cells {
		if c.IsEmpty() {
			continue
		}
		if !b.consistentAt(c) {
			return false
		}
	}
	return true
}

// consistentAt checks one filled cell against its peers, skipping the cell
// itself.
func (b *Board) consistentAt(c Cell) bool {
	peers := b.Row(c.y)
	peers = append(peers, b.Column(c.x)...)
	peers = append(peers, b.Box(c.x, c.y)...)
	for _, peer := range peers {
		if peer.x == c.x && peer.y == c.y {
			continue
		}
		if peer.value == c.value {
			return false
		}
	}
	return true
}

// IsComplete reports whether no empty cells remain.
func (b *Board) IsComplete() bool {
	return b.EmptyCount() == 0
}

// IsSolved reports whether the board is both complete and consistent.
func (b *Board) IsSolved() bool {
	return b.IsComplete() && b.IsConsistent()
}
