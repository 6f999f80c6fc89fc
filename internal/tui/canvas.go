package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sensible-monitor/sensible/internal/monitor"
)

// cell is one terminal cell. A zero rune marks the right half of a wide
// rune and is skipped when rendering.
type cell struct {
	r    rune
	tone tone
}

// Canvas is the visible screen: a grid of cells that regions flush into.
// View renders it for BubbleTea.
type Canvas struct {
	height int
	width  int
	cells  [][]cell
}

// NewCanvas returns an empty canvas. It has no size until Resize is called.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Resize discards the screen contents and sets new dimensions.
func (c *Canvas) Resize(height, width int) {
	c.height, c.width = max(height, 0), max(width, 0)
	c.cells = blankGrid(c.height, c.width, toneText)
}

// Dimensions implements monitor.Surface.
func (c *Canvas) Dimensions() (int, int) {
	return c.height, c.width
}

// CreateRegion implements monitor.Surface.
func (c *Canvas) CreateRegion(height, width, y, x int) monitor.Region {
	r := &region{canvas: c, y: y, x: x, height: max(height, 0), width: max(width, 0)}
	r.Clear()
	return r
}

// View renders the canvas, grouping consecutive cells of the same tone.
func (c *Canvas) View() string {
	if c.height == 0 || c.width == 0 {
		return placeholderStyle.Render("Initializing...")
	}

	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []cell) string {
	var b, run strings.Builder
	current := toneText
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(current.style().Render(run.String()))
			run.Reset()
		}
	}
	for _, ce := range row {
		if ce.r == 0 {
			continue
		}
		if ce.tone != current {
			flush()
			current = ce.tone
		}
		run.WriteRune(ce.r)
	}
	flush()
	return b.String()
}

// ────────────────────────────────────────────────────────────
// Regions
// ────────────────────────────────────────────────────────────

// region is a rectangle of the canvas with its own back buffer. Writes
// land in the back buffer and reach the canvas on Flush.
type region struct {
	canvas        *Canvas
	y, x          int
	height, width int
	back          [][]cell
}

func (r *region) Size() (int, int) {
	return r.height, r.width
}

func (r *region) Clear() {
	r.back = blankGrid(r.height, r.width, toneText)
}

// Border draws a rounded frame around the region's edge.
func (r *region) Border() {
	if r.height < 2 || r.width < 2 {
		return
	}
	b := lipgloss.RoundedBorder()
	glyph := func(s string) cell {
		return cell{r: []rune(s)[0], tone: toneBorder}
	}

	top, bottom := r.back[0], r.back[r.height-1]
	for col := 1; col < r.width-1; col++ {
		top[col] = glyph(b.Top)
		bottom[col] = glyph(b.Bottom)
	}
	for row := 1; row < r.height-1; row++ {
		r.back[row][0] = glyph(b.Left)
		r.back[row][r.width-1] = glyph(b.Right)
	}
	top[0], top[r.width-1] = glyph(b.TopLeft), glyph(b.TopRight)
	bottom[0], bottom[r.width-1] = glyph(b.BottomLeft), glyph(b.BottomRight)
}

// WriteAt places text starting at row, col. Text on the top border row is
// drawn as a title. Anything outside the region is clipped.
func (r *region) WriteAt(row, col int, text string) {
	if row < 0 || row >= r.height {
		return
	}
	t := toneText
	if row == 0 {
		t = toneTitle
	}

	line := r.back[row]
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= r.width {
			return
		}
		if col >= 0 {
			if w == 2 && col+1 >= r.width {
				line[col] = cell{r: ' ', tone: t}
				return
			}
			line[col] = cell{r: ch, tone: t}
			if w == 2 {
				line[col+1] = cell{tone: t}
			}
		}
		col += w
	}
}

// Flush copies the back buffer onto the canvas, clipped to the canvas.
func (r *region) Flush() {
	c := r.canvas
	for row, line := range r.back {
		y := r.y + row
		if y < 0 || y >= c.height {
			continue
		}
		lo := clamp(r.x, 0, c.width)
		hi := clamp(r.x+r.width, 0, c.width)
		if lo >= hi {
			continue
		}
		copy(c.cells[y][lo:hi], line[lo-r.x:hi-r.x])
		// A wide rune cut at the left edge would leave an orphan half.
		if c.cells[y][lo].r == 0 {
			c.cells[y][lo] = cell{r: ' ', tone: toneText}
		}
	}
}
