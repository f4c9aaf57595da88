// Package cli defines the wordgrid command tree. Each subcommand lives in
// its own file; this one holds the root command, global flags and the
// state they share.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/config"
	"github.com/robalobadob/wordgrid/internal/session"
	"github.com/robalobadob/wordgrid/internal/words"
)

// app carries what global flags resolve to before a subcommand runs.
type app struct {
	configPath string
	logLevel   string
	verbose    bool

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wordgrid",
		Short: "Guess the hidden word, one row at a time",
		Long: `wordgrid is a grid word-guessing game. Type a word into the current row,
submit it, and read the marks: exact letters, letters present elsewhere,
and letters absent from the hidden word.

Play locally with "wordgrid play", or host games with "wordgrid serve"
(HTTP/JSON) and "wordgrid ssh" (terminal over SSH).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $WORDGRID_CONFIG)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "shorthand for --log-level debug")

	root.AddCommand(newPlayCommand(a))
	root.AddCommand(newServeCommand(a))
	root.AddCommand(newSSHCommand(a))
	root.AddCommand(newScoreCommand(a))
	root.AddCommand(newWordsCommand(a))
	return root
}

// Execute runs root and exits non-zero on error.
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: log level %q", config.ErrInvalid, cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(lvl)

	a.cfg = cfg
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	return nil
}

// lists loads the configured word lists, sized to the grid width.
func (a *app) lists() (*words.Lists, error) {
	l, err := words.Load(words.Source{
		AnswersFile: a.cfg.Words.AnswersFile,
		AllowedFile: a.cfg.Words.AllowedFile,
		Length:      a.cfg.Cols,
	})
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	answers, allowed := l.Stats()
	a.log.Debug().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")
	return l, nil
}

func (a *app) factory() (*session.Factory, error) {
	l, err := a.lists()
	if err != nil {
		return nil, err
	}
	return &session.Factory{Lists: l, Rows: a.cfg.Rows, Cols: a.cfg.Cols, Salt: a.cfg.DailySalt}, nil
}
