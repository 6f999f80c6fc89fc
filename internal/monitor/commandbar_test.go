package monitor

import (
	"strings"
	"testing"
)

func newBar(width int) *fakeRegion {
	s := &fakeSurface{}
	return s.CreateRegion(3, width, 0, 0).(*fakeRegion)
}

func TestCommandBarRender(t *testing.T) {
	cfg := DefaultConfig()
	region := newBar(96)
	sched := NewRefreshScheduler(cfg)

	NewCommandBar(cfg).Render(region, sched, Viewport{Offset: 1, Visible: 3}, 7)

	line := region.line(1)
	if !strings.HasPrefix(line, cfg.Help) {
		t.Errorf("expected help text first, got %q", line)
	}
	if !strings.Contains(line, "chips 2-4 of 7") {
		t.Errorf("expected visible range, got %q", line)
	}
	if !strings.HasSuffix(line, "refresh 1.00s") {
		t.Errorf("expected cadence at the right edge, got %q", line)
	}
	if region.flushes != 1 {
		t.Errorf("expected one flush, got %d", region.flushes)
	}
}

func TestCommandBarCadence(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		keys []Key
		want string
	}{
		{nil, "refresh 1.00s"},
		{[]Key{KeyUp}, "refresh 0.50s"},
		{[]Key{KeyUp, KeyUp, KeyUp}, "refresh 0.25s"},
		{[]Key{KeyDown, KeyDown, KeyDown, KeyDown, KeyDown}, "refresh 16.00s"},
	}

	for _, tt := range tests {
		sched := NewRefreshScheduler(cfg)
		for _, k := range tt.keys {
			sched.Adjust(k)
		}
		region := newBar(96)
		NewCommandBar(cfg).Render(region, sched, Viewport{Visible: 3}, 3)
		if line := region.line(1); !strings.HasSuffix(line, tt.want) {
			t.Errorf("keys %v: expected suffix %q, got %q", tt.keys, tt.want, line)
		}
	}
}

func TestCommandBarRangeOmitted(t *testing.T) {
	cfg := DefaultConfig()

	region := newBar(96)
	NewCommandBar(cfg).Render(region, NewRefreshScheduler(cfg), Viewport{Visible: 3}, -1)
	if strings.Contains(region.line(1), "chip") {
		t.Errorf("unknown total should omit the range, got %q", region.line(1))
	}

	narrow := newBar(24)
	NewCommandBar(cfg).Render(narrow, NewRefreshScheduler(cfg), Viewport{Visible: 1}, 5)
	line := narrow.line(1)
	if strings.Contains(line, "chip") {
		t.Errorf("range should not fit on a narrow bar, got %q", line)
	}
	if line != "use a…  refresh 1.00s" {
		t.Errorf("expected truncated help and cadence, got %q", line)
	}
}

func TestCommandBarRangeWinsOverHelp(t *testing.T) {
	cfg := DefaultConfig()
	region := newBar(64)

	NewCommandBar(cfg).Render(region, NewRefreshScheduler(cfg), Viewport{Visible: 2}, 3)

	// 30 cells of help, 2 blank, range, 2 blank, cadence.
	want := truncate(cfg.Help, 30) + "  chips 1-2 of 3  refresh 1.00s"
	if got := region.line(1); got != want {
		t.Errorf("two-column bar:\n  got  %q\n  want %q", got, want)
	}
	if !strings.HasSuffix(truncate(cfg.Help, 30), "…") {
		t.Error("help should be truncated with an ellipsis")
	}
}

func TestRangeText(t *testing.T) {
	tests := []struct {
		view  Viewport
		total int
		want  string
	}{
		{Viewport{Visible: 3}, 0, "no chips"},
		{Viewport{Visible: 3}, 1, "chip 1 of 1"},
		{Viewport{Offset: 2, Visible: 3}, 5, "chips 3-5 of 5"},
		{Viewport{Offset: 6, Visible: 3}, 5, "5 chips"},
	}
	for _, tt := range tests {
		if got := rangeText(tt.view, tt.total); got != tt.want {
			t.Errorf("rangeText(%+v, %d) = %q, want %q", tt.view, tt.total, got, tt.want)
		}
	}
}
