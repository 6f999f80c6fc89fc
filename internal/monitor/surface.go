package monitor

// Surface is a terminal screen that hands out rectangular regions.
type Surface interface {
	// CreateRegion returns a region of the given size whose top-left corner
	// sits at row y, column x of the screen.
	CreateRegion(height, width, y, x int) Region
	// Dimensions returns the screen height and width in cells.
	Dimensions() (height, width int)
}

// Region is a window onto part of a Surface. Drawing goes to a back buffer
// and reaches the screen on Flush.
type Region interface {
	Clear()
	Border()
	// WriteAt writes text starting at row, col, clipped to the region.
	WriteAt(row, col int, text string)
	Flush()
	Size() (height, width int)
}
