package monitor

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/sensible-monitor/sensible/pkg/timeutil"
)

const (
	barRow = 1
	// gap is the blank space kept before the range and before the cadence.
	gap = 2
)

// CommandBar draws the help line, the visible chip range and the current
// refresh cadence. It keeps no state of its own.
type CommandBar struct {
	help string
	tick time.Duration
}

// NewCommandBar returns a command bar for cfg.
func NewCommandBar(cfg Config) *CommandBar {
	return &CommandBar{help: cfg.Help, tick: cfg.Tick}
}

// Render draws the bar. total is the number of chips, or negative when the
// chip list could not be read, in which case the range is left out.
//
// The cadence always sits at the right edge. The range follows the help
// text when there is room, otherwise it moves up against the cadence and
// the help text is truncated. The range is dropped only when it cannot fit
// before the cadence at all.
func (b *CommandBar) Render(region Region, sched RefreshScheduler, view Viewport, total int) {
	region.Clear()
	region.Border()
	defer region.Flush()

	_, width := region.Size()
	cadence := "refresh " + timeutil.FormatSeconds(sched.Cadence(b.tick))
	cadenceCol := max(width-2-runewidth.StringWidth(cadence), 1)

	// helpEnd is the first column the help text must not reach.
	helpEnd := cadenceCol - gap
	if total >= 0 {
		span := rangeText(view, total)
		spanWidth := runewidth.StringWidth(span)
		col := 1 + runewidth.StringWidth(b.help) + 3
		if col+spanWidth > cadenceCol-gap {
			col = cadenceCol - gap - spanWidth
		}
		if col >= 1 {
			region.WriteAt(barRow, col, span)
			helpEnd = col - gap
		}
	}

	region.WriteAt(barRow, 1, truncate(b.help, helpEnd-1))
	region.WriteAt(barRow, cadenceCol, cadence)
}

func rangeText(view Viewport, total int) string {
	if total == 0 {
		return "no chips"
	}
	first, last := view.Range(total)
	if last == 0 {
		return fmt.Sprintf("%d chips", total)
	}
	if first == last {
		return fmt.Sprintf("chip %d of %d", first, total)
	}
	return fmt.Sprintf("chips %d-%d of %d", first, last, total)
}
