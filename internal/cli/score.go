package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/game"
)

var errBadGuess = errors.New("bad guess")

var (
	exactTile   = color.New(color.BgGreen, color.FgBlack, color.Bold)
	presentTile = color.New(color.BgYellow, color.FgBlack, color.Bold)
	absentTile  = color.New(color.BgHiBlack, color.FgWhite, color.Bold)
)

type scoreFlags struct {
	target string
	json   bool
}

type scoredGuess struct {
	Guess string          `json:"guess"`
	Marks []game.Feedback `json:"marks"`
}

func newScoreCommand(a *app) *cobra.Command {
	f := &scoreFlags{}
	cmd := &cobra.Command{
		Use:   "score --target WORD GUESS...",
		Short: "Print the marks each guess would get",
		Long: `Score guesses against a target word without playing a game. Repeated
letters are marked the same way the game marks them: exact matches first,
then present letters while unmatched copies remain.

Examples:
  wordgrid score --target alley level
  wordgrid score --target speed erase epees --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := scoreGuesses(f.target, args)
			if err != nil {
				return err
			}
			if f.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			for _, r := range rows {
				writeTiles(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.target, "target", "", "the hidden word")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of tiles")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func scoreGuesses(target string, guesses []string) ([]scoredGuess, error) {
	t, err := game.NewTarget(target)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", target, err)
	}
	out := make([]scoredGuess, 0, len(guesses))
	for _, g := range guesses {
		up := strings.ToUpper(strings.TrimSpace(g))
		if len(up) != t.Len() {
			return nil, fmt.Errorf("%w %q: need %d letters", errBadGuess, g, t.Len())
		}
		if strings.Trim(up, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") != "" {
			return nil, fmt.Errorf("%w %q: letters A-Z only", errBadGuess, g)
		}
		out = append(out, scoredGuess{Guess: up, Marks: game.Score(up, t)})
	}
	return out, nil
}

// writeTiles prints one coloured tile per letter followed by a plain
// pattern (= exact, ~ present, . absent) that survives NO_COLOR.
func writeTiles(w io.Writer, r scoredGuess) {
	var tiles, pattern strings.Builder
	for i, m := range r.Marks {
		cell := " " + string(r.Guess[i]) + " "
		switch m {
		case game.Exact:
			tiles.WriteString(exactTile.Sprint(cell))
			pattern.WriteByte('=')
		case game.Present:
			tiles.WriteString(presentTile.Sprint(cell))
			pattern.WriteByte('~')
		default:
			tiles.WriteString(absentTile.Sprint(cell))
			pattern.WriteByte('.')
		}
	}
	fmt.Fprintf(w, "%s  %s\n", tiles.String(), pattern.String())
}
