package domain

// ColumnTracker keeps, per column, the length of the unbroken same-player run
// on top of that column. Negative values belong to Player1, positive to
// Player2 and zero means the column is still empty.
//
//	0 0 0 0 0 2 0
//	0 0 0 0 0 2 1
//	1 0 0 0 0 1 1
//	2 0 2 0 1 1 1
//	2 2 2 0 1 1 2
//
// tracks as [-1, 1, 2, 0, -2, 2, -3].
type ColumnTracker []int

func NewColumnTracker(width int) ColumnTracker {
	return make(ColumnTracker, width)
}

// Push records a counter dropped by player on top of column.
func (t ColumnTracker) Push(column int, player PlayerID) {
	v := t[column]
	switch player {
	case Player1:
		if v < 0 {
			t[column] = v - 1
		} else {
			t[column] = -1
		}
	case Player2:
		if v > 0 {
			t[column] = v + 1
		} else {
			t[column] = 1
		}
	}
}

// Run returns the surface run length of column if player owns it, else 0.
func (t ColumnTracker) Run(column int, player PlayerID) int {
	v := t[column]
	switch {
	case player == Player1 && v < 0:
		return -v
	case player == Player2 && v > 0:
		return v
	}
	return 0
}
