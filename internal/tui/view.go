package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordgrid/internal/game"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// View implements tea.Model.
func (m Model) View() string {
	title := "wordgrid"
	if m.name != "" {
		title += " · " + m.name
	}
	parts := []string{
		titleStyle.Render(title),
		m.renderGrid(),
		m.renderKeyboard(),
	}
	if line := m.statusLine(); line != "" {
		parts = append(parts, statusStyle.Render(line))
	}
	parts = append(parts, helpStyle.Render(m.help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) renderGrid() string {
	g := m.game
	cur := g.Cursor()
	rows := make([]string, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		tiles := make([]string, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			cell := g.Cell(r, c)
			base := tileStyle
			if cur.AcceptsInput() && cur.IsAt(game.Position{Row: r, Col: c}) {
				base = cursorTileStyle
			}
			tiles[c] = paint(base, cell.Mark).Render(string(cell.Char))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderKeyboard() string {
	hints := m.game.Hints()
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			keys = append(keys, paint(keyStyle, hints[r]).Render(string(r)))
		}
		lines[i] = strings.Repeat(" ", i) + lipgloss.JoinHorizontal(lipgloss.Top, keys...)
	}
	return lipgloss.NewStyle().MarginTop(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) statusLine() string {
	switch m.game.State() {
	case game.Won:
		return fmt.Sprintf("Solved in %d/%d!", m.game.Attempts(), m.game.Rows())
	case game.Lost:
		w, _ := m.game.Reveal()
		return "Out of rows. The word was " + w
	}
	return m.status
}

func (m Model) help() string {
	if m.game.State().Finished() {
		return "ctrl+n new game • esc quit"
	}
	return "type letters • ←/→ move • backspace delete • enter submit • esc quit"
}
