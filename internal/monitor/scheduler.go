package monitor

import (
	"time"

	"github.com/sensible-monitor/sensible/pkg/timeutil"
)

// RefreshScheduler decides, tick by tick, when a full render is due.
type RefreshScheduler struct {
	// IntervalTicks is the number of ticks between unprompted renders.
	IntervalTicks int
	// TicksSinceLast counts ticks since the last full render.
	TicksSinceLast int

	min, max int
}

// NewRefreshScheduler returns a scheduler at cfg's default cadence.
func NewRefreshScheduler(cfg Config) RefreshScheduler {
	return RefreshScheduler{
		IntervalTicks: clamp(cfg.DefaultInterval, cfg.MinInterval, cfg.MaxInterval),
		min:           cfg.MinInterval,
		max:           cfg.MaxInterval,
	}
}

// Faster halves the interval, floored at the minimum. It reports whether
// the interval changed.
func (s *RefreshScheduler) Faster() bool {
	next := max(s.IntervalTicks/2, s.min)
	changed := next != s.IntervalTicks
	s.IntervalTicks = next
	return changed
}

// Slower doubles the interval, capped at the maximum. It reports whether
// the interval changed.
func (s *RefreshScheduler) Slower() bool {
	next := min(s.IntervalTicks*2, s.max)
	changed := next != s.IntervalTicks
	s.IntervalTicks = next
	return changed
}

// Adjust applies a cadence key. Keys other than Up and Down are ignored.
func (s *RefreshScheduler) Adjust(key Key) bool {
	switch key {
	case KeyUp:
		return s.Faster()
	case KeyDown:
		return s.Slower()
	}
	return false
}

// Due reports whether this tick renders. Navigation keys always render;
// otherwise a render is due once TicksSinceLast reaches IntervalTicks. A
// render resets the counter, anything else advances it.
func (s *RefreshScheduler) Due(key Key) bool {
	if key.IsNavigation() || s.TicksSinceLast >= s.IntervalTicks {
		s.TicksSinceLast = 0
		return true
	}
	s.TicksSinceLast++
	return false
}

// Invalidate makes the next Due call report true.
func (s *RefreshScheduler) Invalidate() {
	s.TicksSinceLast = s.IntervalTicks
}

// Cadence is the time between unprompted renders.
func (s RefreshScheduler) Cadence(tick time.Duration) time.Duration {
	return timeutil.Ticks(s.IntervalTicks, tick)
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
