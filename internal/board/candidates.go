package board

// PossibleValues returns, in ascending order, every value 1-9 that could
// legally be placed at column x, row y against the current board state.
// The scan is pure; the board is never mutated. An empty slice means the
// cell admits no value and the surrounding search branch is dead.
func (b *Board) PossibleValues(x, y int) []int {
	values := make([]int, 0, Size)
	for v := 1; v <= Size; v++ {
		if b.CanBeAt(v, x, y) {
			values = append(values, v)
		}
	}
	return values
}
