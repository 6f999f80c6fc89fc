package tui

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// blankCells returns a row of width spaces in tone t.
func blankCells(width int, t tone) []cell {
	row := make([]cell, max(width, 0))
	for i := range row {
		row[i] = cell{r: ' ', tone: t}
	}
	return row
}

// blankGrid returns height rows of blankCells.
func blankGrid(height, width int, t tone) [][]cell {
	grid := make([][]cell, max(height, 0))
	for i := range grid {
		grid[i] = blankCells(width, t)
	}
	return grid
}
