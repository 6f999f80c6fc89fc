package monitor

import (
	"context"

	"github.com/sensible-monitor/sensible/internal/sensors"
	"github.com/sirupsen/logrus"
)

// State is the loop's lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

// Dashboard is the loop state: cadence, scroll position and the screen
// regions. It is driven one tick at a time by Step and must only be used
// from one goroutine.
type Dashboard struct {
	cfg      Config
	provider sensors.Provider
	surface  Surface
	renderer *ChipRenderer
	bar      *CommandBar
	log      logrus.FieldLogger

	sched RefreshScheduler
	view  Viewport

	columns   []Region
	barRegion Region
	height    int
	width     int
}

// NewDashboard returns a dashboard whose first Step renders immediately.
func NewDashboard(cfg Config, provider sensors.Provider, surface Surface, log logrus.FieldLogger) *Dashboard {
	log = log.WithField("component", "dashboard")
	d := &Dashboard{
		cfg:      cfg,
		provider: provider,
		surface:  surface,
		renderer: NewChipRenderer(provider, log),
		bar:      NewCommandBar(cfg),
		log:      log,
		sched:    NewRefreshScheduler(cfg),
	}
	d.sched.Invalidate()
	return d
}

// Step runs one tick with the polled key.
func (d *Dashboard) Step(ctx context.Context, key Key) State {
	if key == KeyQuit {
		d.log.Info("quit requested")
		return Stopped
	}

	d.layout()

	switch key {
	case KeyLeft:
		d.view.Left()
	case KeyRight:
		d.view.Right(func(ordinal int) bool { return d.chipExists(ctx, ordinal) })
	case KeyUp, KeyDown:
		if d.sched.Adjust(key) {
			d.log.WithField("interval_ticks", d.sched.IntervalTicks).Debug("refresh cadence changed")
		}
	}

	if d.sched.Due(key) {
		d.Render(ctx)
	}
	return Running
}

// Render redraws every visible chip column and the command bar.
func (d *Dashboard) Render(ctx context.Context) {
	if d.barRegion == nil {
		return
	}
	for slot, region := range d.columns {
		d.renderer.Render(ctx, region, d.view.Ordinal(slot))
	}
	d.bar.Render(d.barRegion, d.sched, d.view, d.chipCount(ctx))
}

// Invalidate forces a render on the next Step, e.g. after a resize.
func (d *Dashboard) Invalidate() {
	d.sched.Invalidate()
}

// Scheduler returns a copy of the refresh state.
func (d *Dashboard) Scheduler() RefreshScheduler {
	return d.sched
}

// Viewport returns a copy of the scroll state.
func (d *Dashboard) Viewport() Viewport {
	return d.view
}

// layout sizes the viewport to the screen and rebuilds the regions when
// the screen dimensions change.
func (d *Dashboard) layout() {
	height, width := d.surface.Dimensions()
	d.view.Resize(width, d.cfg.ColumnWidth)

	if height == d.height && width == d.width && len(d.columns) == d.view.Visible {
		return
	}
	d.height, d.width = height, width
	d.columns, d.barRegion = nil, nil
	if height <= 0 || width <= 0 {
		return
	}

	barHeight := min(d.cfg.CommandBarHeight, height)
	columnHeight := height - barHeight
	d.columns = make([]Region, d.view.Visible)
	for slot := range d.columns {
		d.columns[slot] = d.surface.CreateRegion(columnHeight, d.cfg.ColumnWidth, 0, slot*d.cfg.ColumnWidth)
	}
	d.barRegion = d.surface.CreateRegion(barHeight, width, columnHeight, 0)

	d.log.WithFields(logrus.Fields{
		"height":  height,
		"width":   width,
		"columns": d.view.Visible,
	}).Debug("layout rebuilt")
}

// chipExists probes the provider for a chip at ordinal.
func (d *Dashboard) chipExists(ctx context.Context, ordinal int) bool {
	sess, err := d.provider.Open(ctx)
	if err != nil {
		d.log.WithError(err).Warn("opening sensor source")
		return false
	}
	defer closeSession(sess, d.log)

	_, ok := sess.ChipAt(ordinal)
	return ok
}

// chipCount returns the number of chips, or -1 if the provider fails.
func (d *Dashboard) chipCount(ctx context.Context) int {
	sess, err := d.provider.Open(ctx)
	if err != nil {
		d.log.WithError(err).Warn("opening sensor source")
		return -1
	}
	defer closeSession(sess, d.log)

	return sensors.Count(sess.Chips())
}
