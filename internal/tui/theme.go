package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue = lipgloss.Color("#58a6ff")

	// Structural
	colorDivider = lipgloss.Color("#30363d")
)

// ────────────────────────────────────────────────────────────
// Cell tones
// ────────────────────────────────────────────────────────────

// tone selects the style a canvas cell is drawn with.
type tone uint8

const (
	toneText tone = iota
	toneBorder
	toneTitle
)

var (
	textStyle = lipgloss.NewStyle().
			Foreground(colorText)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorDivider)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Padding(1, 2)
)

func (t tone) style() lipgloss.Style {
	switch t {
	case toneBorder:
		return borderStyle
	case toneTitle:
		return titleStyle
	default:
		return textStyle
	}
}
