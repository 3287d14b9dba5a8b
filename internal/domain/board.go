package domain

import "strings"

// Board is an append-only list of rows, row 0 at the bottom. Rows are only
// materialized when a drop needs them and never beyond the declared height.
type Board struct {
	width  int
	height int
	rows   [][]PlayerID
}

func NewBoard(width, height int) *Board {
	return &Board{width: width, height: height}
}

// Rows returns how many rows have been materialized so far.
func (b *Board) Rows() int {
	return len(b.rows)
}

func (b *Board) Width() int {
	return b.width
}

// EnsureRow makes row usable. Asking for the next unmaterialized row appends
// an empty one; asking for it when the board already has height rows is a
// capacity violation. Callers never skip a row.
func (b *Board) EnsureRow(row int) error {
	if row < len(b.rows) {
		return nil
	}
	if len(b.rows) >= b.height {
		return ErrIllegalRow
	}
	b.rows = append(b.rows, make([]PlayerID, b.width))
	return nil
}

// Place writes player into an empty, materialized cell.
func (b *Board) Place(row, column int, player PlayerID) {
	b.rows[row][column] = player
}

// Cell reads a materialized cell.
func (b *Board) Cell(row, column int) PlayerID {
	return b.rows[row][column]
}

// String renders the board top row first, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := len(b.rows) - 1; r >= 0; r-- {
		for c, cell := range b.rows[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte('0' + cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
