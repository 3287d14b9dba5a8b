package domain

// All scans look only at lines through the counter just placed at (row, column)
// and only at materialized rows.

// countInDirection counts player's counters walking from (row, column) by
// (deltaRow, deltaCol), not including the starting cell.
func countInDirection(b *Board, row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < b.Rows() && c >= 0 && c < b.Width() && b.Cell(r, c) == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func lineThrough(b *Board, row, column, deltaRow, deltaCol int, player PlayerID) int {
	return 1 +
		countInDirection(b, row, column, -deltaRow, -deltaCol, player) +
		countInDirection(b, row, column, deltaRow, deltaCol, player)
}

// ScanRow walks left then right along the row of the new counter.
func ScanRow(b *Board, row, column int, player PlayerID, connect int) bool {
	if connect > b.Width() {
		return false
	}
	return lineThrough(b, row, column, 0, 1, player) >= connect
}

// ScanColumn answers the vertical check from the tracker alone.
func ScanColumn(t ColumnTracker, column int, player PlayerID, connect int) bool {
	return t.Run(column, player) >= connect
}

// ScanRisingDiagonal checks the bottom-left to top-right diagonal.
func ScanRisingDiagonal(b *Board, row, column int, player PlayerID, connect int) bool {
	return lineThrough(b, row, column, 1, 1, player) >= connect
}

// ScanFallingDiagonal checks the top-left to bottom-right diagonal.
func ScanFallingDiagonal(b *Board, row, column int, player PlayerID, connect int) bool {
	return lineThrough(b, row, column, -1, 1, player) >= connect
}
