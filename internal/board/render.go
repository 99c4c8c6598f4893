package board

import (
	"fmt"
	"strings"
)

// String returns the board as an 81-character string in row-major order.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, c := range b.cells {
		if c.IsEmpty() {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(c.value))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for y := 0; y < Size; y++ {
		sb.WriteString("| ")
		for x := 0; x < Size; x++ {
			c := b.cells[index(x, y)]
			if c.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c.value))
			}
			sb.WriteByte(' ')

			if (x+1)%BoxSize == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (y+1)%BoxSize == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Parse creates a board from an 81-character string in row-major order.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells. Whitespace,
// including newlines between rows, is ignored, so both the single-line
// form produced by String and a 9-rows layout parse back.
func Parse(s string) (*Board, error) {
	fields := strings.Fields(s)
	compact := strings.Join(fields, "")
	if len(compact) != CellCount {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidGrid, CellCount, len(compact))
	}

	b := New()
	for pos := 0; pos < CellCount; pos++ {
		ch := compact[pos]
		switch {
		case ch == '.' || ch == '0':
			// Empty cell, already initialized
		case ch >= '1' && ch <= '9':
			b.cells[pos].value = int(ch - '0')
		default:
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidGrid, ch, pos)
		}
	}
	return b, nil
}
