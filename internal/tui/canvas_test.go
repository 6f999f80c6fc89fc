package tui

import (
	"strings"
	"testing"
)

// text returns the runes of a canvas row, skipping wide-rune halves.
func text(c *Canvas, row int) string {
	var b strings.Builder
	for _, ce := range c.cells[row] {
		if ce.r != 0 {
			b.WriteRune(ce.r)
		}
	}
	return b.String()
}

func TestCanvasViewBeforeResize(t *testing.T) {
	c := NewCanvas()
	if !strings.Contains(c.View(), "Initializing...") {
		t.Errorf("expected placeholder, got %q", c.View())
	}
}

func TestRegionFlush(t *testing.T) {
	c := NewCanvas()
	c.Resize(4, 12)

	r := c.CreateRegion(4, 6, 0, 2)
	r.Border()
	r.WriteAt(0, 1, "ab")
	r.WriteAt(1, 1, "hi")

	if got := text(c, 1); strings.TrimSpace(got) != "" {
		t.Fatalf("writes must not reach the canvas before Flush, got %q", got)
	}

	r.Flush()
	want := []string{
		"  ╭ab──╮    ",
		"  │hi  │    ",
		"  │    │    ",
		"  ╰────╯    ",
	}
	for i := range want {
		if got := text(c, i); got != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], got)
		}
	}
	if c.cells[0][3].tone != toneTitle || c.cells[1][3].tone != toneText || c.cells[0][2].tone != toneBorder {
		t.Error("unexpected cell tones")
	}
}

func TestRegionClearKeepsFrontUntilFlush(t *testing.T) {
	c := NewCanvas()
	c.Resize(1, 4)
	r := c.CreateRegion(1, 4, 0, 0)
	r.WriteAt(0, 0, "abcd")
	r.Flush()

	r.Clear()
	if got := text(c, 0); got != "abcd" {
		t.Errorf("Clear must only touch the back buffer, got %q", got)
	}
	r.Flush()
	if got := text(c, 0); got != "    " {
		t.Errorf("expected blank row after flush, got %q", got)
	}
}

func TestRegionClipping(t *testing.T) {
	c := NewCanvas()
	c.Resize(2, 5)

	r := c.CreateRegion(3, 8, 0, 3)
	r.WriteAt(0, 0, "abcdefghij")
	r.WriteAt(5, 0, "ignored")
	r.WriteAt(1, -2, "xyz")
	r.Flush()

	if got := text(c, 0); got != "   ab" {
		t.Errorf("expected region clipped to canvas, got %q", got)
	}
	if got := text(c, 1); got != "   z " {
		t.Errorf("expected negative column clipped, got %q", got)
	}
}

func TestRegionWideRunes(t *testing.T) {
	c := NewCanvas()
	c.Resize(1, 5)

	r := c.CreateRegion(1, 5, 0, 0)
	r.WriteAt(0, 0, "温度x")
	r.Flush()

	if got := text(c, 0); got != "温度x" {
		t.Errorf("expected wide runes to occupy two cells, got %q", got)
	}

	r.Clear()
	r.WriteAt(0, 4, "温")
	r.Flush()
	if got := text(c, 0); got != "     " {
		t.Errorf("a wide rune that does not fit should be blanked, got %q", got)
	}
}

func TestCanvasView(t *testing.T) {
	c := NewCanvas()
	c.Resize(2, 3)
	r := c.CreateRegion(2, 3, 0, 0)
	r.Border()
	r.Flush()

	view := c.View()
	if lines := strings.Split(view, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(view, "╭─╮") || !strings.Contains(view, "╰─╯") {
		t.Errorf("expected rounded border in view, got %q", view)
	}
}

func TestCanvasResizeDiscardsContents(t *testing.T) {
	c := NewCanvas()
	c.Resize(1, 3)
	r := c.CreateRegion(1, 3, 0, 0)
	r.WriteAt(0, 0, "abc")
	r.Flush()

	c.Resize(2, 4)
	if h, w := c.Dimensions(); h != 2 || w != 4 {
		t.Fatalf("expected 2x4, got %dx%d", h, w)
	}
	if got := text(c, 0); got != "    " {
		t.Errorf("expected blank canvas after resize, got %q", got)
	}

	// Regions from the old layout are clipped, never out of range.
	r.Flush()
	c.Resize(0, 0)
	r.Flush()
}
