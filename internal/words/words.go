// internal/words/words.go
//
// Provides the dictionary the game engine validates rows against.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the
//     embedded defaults in package assets.
//   - Normalize, filter, sort and de-duplicate words.
//   - Offer membership tests (binary search) and uniform random picks.
//
// Word Lists:
//   - "answers": words a session may be played against.
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//  1. If both AnswersFile and AllowedFile are set,
//     load answers from the first and allowed guesses from the second.
//  2. If only AllowedFile is set,
//     load that file and use it for both answers and allowed guesses.
//  3. If neither is set,
//     fall back to the embedded assets lists.
//
// Constraints:
//   - Words must be exactly Length letters A–Z after upper-casing.
//   - Blank lines and lines starting with '#' are skipped.
//   - A Dictionary is immutable once built.
package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordgrid/assets"
)

// DefaultLength is the word length of the canonical 6x5 grid.
const DefaultLength = 5

var (
	ErrEmptyAnswers = errors.New("words: answers list is empty")
	ErrEmpty        = errors.New("words: dictionary is empty")
)

// randReader is the entropy source for Random.
var randReader io.Reader = rand.Reader

// Dictionary is a sorted, de-duplicated list of uppercase words of one length.
type Dictionary struct {
	length int
	words  []string
}

// New builds a dictionary from raw words, keeping those that normalize to
// exactly length letters.
func New(length int, raw []string) *Dictionary {
	upper := cases.Upper(language.Und)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = upper.String(strings.TrimSpace(w))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return &Dictionary{length: length, words: out}
}

// Contains reports whether w is in the dictionary. Case-insensitive.
func (d *Dictionary) Contains(w string) bool {
	w = strings.ToUpper(w)
	i := sort.SearchStrings(d.words, w)
	return i < len(d.words) && d.words[i] == w
}

// Random returns a uniformly chosen word.
func (d *Dictionary) Random() (string, error) {
	if len(d.words) == 0 {
		return "", ErrEmpty
	}
	n, err := rand.Int(randReader, big.NewInt(int64(len(d.words))))
	if err != nil {
		return "", fmt.Errorf("pick random word: %w", err)
	}
	return d.words[n.Int64()], nil
}

// At returns the i-th word in sorted order.
func (d *Dictionary) At(i int) string { return d.words[i] }

// Len is the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Length is the letter count every word has.
func (d *Dictionary) Length() int { return d.length }

// Words returns a copy of the sorted word list.
func (d *Dictionary) Words() []string { return append([]string(nil), d.words...) }

// union returns a dictionary holding the words of d and o.
func (d *Dictionary) union(o *Dictionary) *Dictionary {
	all := make([]string, 0, len(d.words)+len(o.words))
	all = append(all, d.words...)
	all = append(all, o.words...)
	return New(d.length, all)
}

// Lists pairs the target-word list with the guess list.
type Lists struct {
	Answers *Dictionary
	Allowed *Dictionary
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return l.Answers.Len(), l.Allowed.Len()
}

// Source says where to read word lists from. Empty paths mean embedded.
type Source struct {
	AnswersFile string
	AllowedFile string
	Length      int
}

// Load reads both lists according to src. The allowed list always
// contains every answer. An empty answers list is an error.
func Load(src Source) (*Lists, error) {
	length := src.Length
	if length <= 0 {
		length = DefaultLength
	}

	var ansRaw, allowRaw []string
	var err error
	switch {
	// Case 1: both lists provided
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansRaw, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowRaw, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case src.AllowedFile != "":
		if allowRaw, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansRaw = allowRaw

	// Case 3: embedded defaults
	default:
		if ansRaw, err = readEmbedded(assets.Answers); err != nil {
			return nil, err
		}
		if allowRaw, err = readEmbedded(assets.Allowed); err != nil {
			return nil, err
		}
	}

	answers := New(length, ansRaw)
	if answers.Len() == 0 {
		return nil, fmt.Errorf("%w (length %d)", ErrEmptyAnswers, length)
	}
	return &Lists{
		Answers: answers,
		Allowed: answers.union(New(length, allowRaw)),
	}, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return readLines(f)
}

func readEmbedded(open func() (io.ReadCloser, error)) ([]string, error) {
	rc, err := open()
	if err != nil {
		return nil, fmt.Errorf("open embedded word list: %w", err)
	}
	defer rc.Close()
	return readLines(rc)
}

// readLines returns non-blank, non-comment lines.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
