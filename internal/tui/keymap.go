package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sensible-monitor/sensible/internal/monitor"
)

// keyMap holds the dashboard's key bindings.
type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous chip"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next chip"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "refresh faster"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "refresh slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// translate maps a key press to a dashboard key. Unbound keys become
// KeyOther, which the dashboard ignores.
func (k keyMap) translate(msg tea.KeyMsg) monitor.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return monitor.KeyQuit
	case key.Matches(msg, k.Left):
		return monitor.KeyLeft
	case key.Matches(msg, k.Right):
		return monitor.KeyRight
	case key.Matches(msg, k.Up):
		return monitor.KeyUp
	case key.Matches(msg, k.Down):
		return monitor.KeyDown
	default:
		return monitor.KeyOther
	}
}
