package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordgrid/internal/game"
)

// ANSI 256-color indices.
const (
	colorExact   = lipgloss.Color("34")  // green
	colorPresent = lipgloss.Color("178") // yellow
	colorAbsent  = lipgloss.Color("240") // dark gray
	colorBorder  = lipgloss.Color("245")
	colorCursor  = lipgloss.Color("15")
	colorText    = lipgloss.Color("15")
)

var (
	tileStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	cursorTileStyle = tileStyle.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(colorCursor)

	keyStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorPresent).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorAbsent).
			MarginTop(1)
)

// markColor is the background for a feedback mark; ok is false for
// Unmarked.
func markColor(m game.Feedback) (lipgloss.Color, bool) {
	switch m {
	case game.Exact:
		return colorExact, true
	case game.Present:
		return colorPresent, true
	case game.Absent:
		return colorAbsent, true
	}
	return "", false
}

func paint(base lipgloss.Style, m game.Feedback) lipgloss.Style {
	if c, ok := markColor(m); ok {
		return base.Background(c).Foreground(colorText)
	}
	return base
}
