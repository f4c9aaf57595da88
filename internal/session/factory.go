// Package session starts games from the loaded word lists. It is the one
// place that decides which target a new game is played against.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordgrid/internal/daily"
	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/words"
)

var ErrUnknownAnswer = errors.New("session: answer is not in the word list")

// Options selects the target of a new game. Answer wins over Daily; with
// neither, a uniformly random answer is drawn.
type Options struct {
	Answer string
	Daily  bool
}

// Factory creates sessions of one grid size from one set of word lists.
type Factory struct {
	Lists *words.Lists
	Rows  int
	Cols  int
	Salt  string
	Now   func() time.Time
}

// New starts a game.
func (f *Factory) New(opts Options) (*game.Session, error) {
	word, err := f.pick(opts)
	if err != nil {
		return nil, err
	}
	target, err := game.NewTarget(word)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", word, err)
	}
	return game.NewSession(f.Lists.Allowed, target, game.WithSize(f.Rows, f.Cols))
}

func (f *Factory) pick(opts Options) (string, error) {
	if a := strings.TrimSpace(opts.Answer); a != "" {
		if !f.Lists.Allowed.Contains(a) {
			return "", fmt.Errorf("%w: %q", ErrUnknownAnswer, a)
		}
		return strings.ToUpper(a), nil
	}
	if opts.Daily {
		now := time.Now
		if f.Now != nil {
			now = f.Now
		}
		_, w := daily.Word(now(), f.Salt, f.Lists.Answers)
		return w, nil
	}
	w, err := f.Lists.Answers.Random()
	if err != nil {
		return "", fmt.Errorf("random answer: %w", err)
	}
	return w, nil
}
