// Package tui is the terminal front end: it maps key presses to engine
// events and renders the grid, an on-screen keyboard and status messages.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/session"
)

// Model is the bubbletea model for one player.
type Model struct {
	factory *session.Factory
	opts    session.Options
	game    *game.Session
	name    string
	status  string
	width   int
	height  int
	log     zerolog.Logger
}

// New starts a game and wraps it in a Model.
func New(f *session.Factory, opts session.Options, name string, log zerolog.Logger) (Model, error) {
	g, err := f.New(opts)
	if err != nil {
		return Model{}, fmt.Errorf("start game: %w", err)
	}
	return Model{factory: f, opts: opts, game: g, name: name, log: log}, nil
}

// Session exposes the running game.
func (m Model) Session() *game.Session { return m.game }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("wordgrid")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlN:
		if !m.game.State().Finished() {
			return m, nil
		}
		g, err := m.factory.New(session.Options{Daily: m.opts.Daily})
		if err != nil {
			m.log.Error().Err(err).Msg("new game")
			m.status = "Could not start a new game"
			return m, nil
		}
		m.game, m.status = g, ""
		m.log.Info().Str("player", m.name).Msg("new game")
		return m, nil
	}

	ev, ok := keyEvent(msg)
	if !ok {
		return m, nil
	}
	m.status = ""
	out := m.game.Apply(ev)
	if ev.Action != game.ActionSubmit {
		return m, nil
	}
	switch out.Result {
	case game.RejectedIncomplete:
		m.status = "Not enough letters"
	case game.RejectedNotInDictionary:
		m.status = "Not in word list"
	case game.Accepted:
		m.log.Debug().Str("player", m.name).Int("attempt", m.game.Attempts()).Str("state", m.game.State().String()).Msg("row submitted")
	}
	return m, nil
}

// keyEvent maps a key press to an engine event.
func keyEvent(msg tea.KeyMsg) (game.Event, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return game.Event{Action: game.ActionSubmit}, true
	case tea.KeyBackspace, tea.KeyDelete:
		return game.Event{Action: game.ActionBackspace}, true
	case tea.KeyLeft:
		return game.Event{Action: game.ActionLeft}, true
	case tea.KeyRight:
		return game.Event{Action: game.ActionRight}, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return game.Event{}, false
		}
		ev, err := game.ParseKey(string(msg.Runes[0]))
		if err != nil || ev.Action != game.ActionType {
			return game.Event{}, false
		}
		return ev, true
	}
	return game.Event{}, false
}
