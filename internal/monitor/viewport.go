package monitor

// VisibleCount returns how many chip columns fit in screenWidth, at least 1.
func VisibleCount(screenWidth, columnWidth int) int {
	if columnWidth <= 0 {
		return 1
	}
	return max(1, screenWidth/columnWidth)
}

// Viewport is the horizontal window onto the chip list.
type Viewport struct {
	// Offset is the ordinal of the leftmost visible chip.
	Offset int
	// Visible is the number of chip columns on screen.
	Visible int
}

// Resize recomputes Visible for a new screen width.
func (v *Viewport) Resize(screenWidth, columnWidth int) {
	v.Visible = VisibleCount(screenWidth, columnWidth)
}

// Left scrolls one chip left, stopping at the first chip.
func (v *Viewport) Left() bool {
	if v.Offset == 0 {
		return false
	}
	v.Offset--
	return true
}

// Right scrolls one chip right, but only if a chip exists just past the
// right edge, so the last chip never scrolls out of view.
func (v *Viewport) Right(exists func(ordinal int) bool) bool {
	if !exists(v.Offset + max(v.Visible, 1)) {
		return false
	}
	v.Offset++
	return true
}

// Ordinal maps a column slot to a chip ordinal.
func (v Viewport) Ordinal(slot int) int {
	return v.Offset + slot
}

// Range returns the 1-based first and last visible ordinals given total
// chips. last is 0 when nothing is visible.
func (v Viewport) Range(total int) (first, last int) {
	first = v.Offset + 1
	last = min(v.Offset+v.Visible, total)
	if last < first {
		return first, 0
	}
	return first, last
}
