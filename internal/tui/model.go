package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sensible-monitor/sensible/internal/monitor"
	"github.com/sirupsen/logrus"
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model. Every tick it hands at most one
// queued key to the dashboard, which decides whether to redraw the canvas.
type Model struct {
	ctx    context.Context
	dash   *monitor.Dashboard
	canvas *Canvas
	queue  *monitor.KeyQueue
	keys   keyMap
	tick   time.Duration
	log    logrus.FieldLogger
}

// NewModel returns a model driving dash, which must draw onto canvas.
func NewModel(ctx context.Context, cfg monitor.Config, dash *monitor.Dashboard, canvas *Canvas, log logrus.FieldLogger) Model {
	return Model{
		ctx:    ctx,
		dash:   dash,
		canvas: canvas,
		queue:  monitor.NewKeyQueue(cfg.KeyBuffer),
		keys:   defaultKeyMap(),
		tick:   cfg.Tick,
		log:    log.WithField("component", "tui"),
	}
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type tickMsg time.Time

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ────────────────────────────────────────────────────────────
// Init / Update
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.nextTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Height, msg.Width)
		m.dash.Invalidate()
		m.log.WithFields(logrus.Fields{
			"height": msg.Height,
			"width":  msg.Width,
		}).Debug("terminal resized")
		return m, nil

	case tea.KeyMsg:
		k := m.keys.translate(msg)
		if !m.queue.Push(k) {
			m.log.WithField("key", k).Debug("key buffer full, dropping key")
		}
		return m, nil

	case tickMsg:
		if err := m.ctx.Err(); err != nil {
			return m, tea.Quit
		}
		if m.dash.Step(m.ctx, m.queue.Poll()) == monitor.Stopped {
			return m, tea.Quit
		}
		return m, m.nextTick()
	}

	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	return m.canvas.View()
}
