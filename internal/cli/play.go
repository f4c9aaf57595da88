package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/session"
	"github.com/robalobadob/wordgrid/internal/tui"
)

type playFlags struct {
	daily   bool
	answer  string
	logFile string
}

func newPlayCommand(a *app) *cobra.Command {
	f := &playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in this terminal",
		Long: `Play one game in the terminal. Letters type, Backspace deletes, the arrow
keys move within the row and Enter submits. Ctrl+N starts another game once
this one is over; Esc or Ctrl+C quits.

Examples:
  wordgrid play
  wordgrid play --daily
  wordgrid play --answer crane --log-file play.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, a, f)
		},
	}
	cmd.Flags().BoolVar(&f.daily, "daily", false, "play today's word")
	cmd.Flags().StringVar(&f.answer, "answer", "", "play against a fixed word (must be in the word list)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs here; the game owns the terminal otherwise")
	return cmd
}

func runPlay(cmd *cobra.Command, a *app, f *playFlags) error {
	log := zerolog.Nop()
	if f.logFile != "" {
		lf, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer lf.Close()
		log = zerolog.New(lf).With().Timestamp().Logger()
	}
	a.log = log

	fac, err := a.factory()
	if err != nil {
		return err
	}
	m, err := tui.New(fac, session.Options{Answer: f.answer, Daily: f.daily}, petname.Generate(2, "-"), log)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	if fm, ok := final.(tui.Model); ok {
		printOutcome(cmd.OutOrStdout(), fm.Session())
	}
	return nil
}

// printOutcome leaves a line on the normal screen after the alt screen goes.
func printOutcome(w io.Writer, g *game.Session) {
	switch g.State() {
	case game.Won:
		fmt.Fprintf(w, "Solved in %d/%d.\n", g.Attempts(), g.Rows())
	case game.Lost:
		word, _ := g.Reveal()
		fmt.Fprintf(w, "Out of rows. The word was %s.\n", word)
	}
}
