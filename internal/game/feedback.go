// internal/game/feedback.go
//
// Feedback engine: compares a completed row with the target word.
//
// Score runs two strictly ordered passes over the row:
//
// Pass 1:
//   - Mark exact matches as Exact and consume one occurrence of that
//     letter from the availability counters (seeded from the target's
//     letter multiset).
//
// Pass 2:
//   - For each position that is not Exact: if the letter still has an
//     unconsumed occurrence, mark Present and consume it; otherwise Absent.
//
// Pass 2 must see the counters after every exact match in the row has been
// consumed. For any letter, Exact+Present never exceeds its count in the
// target.

package game

import "strings"

// Target is the secret word of a session together with its letter counts.
type Target struct {
	word   string
	counts [26]int
}

// NewTarget uppercases word and derives its letter multiset.
func NewTarget(word string) (Target, error) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" || !isLetters(w) {
		return Target{}, ErrInvalidTarget
	}
	t := Target{word: w}
	for i := 0; i < len(w); i++ {
		t.counts[w[i]-'A']++
	}
	return t, nil
}

// Word returns the uppercase target word.
func (t Target) Word() string { return t.word }

// Len is the number of letters in the target.
func (t Target) Len() int { return len(t.word) }

// Counts returns the letter multiset as a fresh map.
func (t Target) Counts() map[rune]int {
	out := make(map[rune]int)
	for i, n := range t.counts {
		if n > 0 {
			out[rune('A'+i)] = n
		}
	}
	return out
}

// Score classifies each position of guess against target. guess is expected
// to be uppercase and as long as the target; positions beyond the target or
// holding non-letters are Absent.
func Score(guess string, target Target) []Feedback {
	n := len(guess)
	res := make([]Feedback, n)
	avail := target.counts

	// First pass: exact matches consume availability.
	for i := 0; i < n; i++ {
		res[i] = Absent
		if i < len(target.word) && guess[i] == target.word[i] {
			res[i] = Exact
			avail[guess[i]-'A']--
		}
	}

	// Second pass: present-elsewhere from what is left.
	for i := 0; i < n; i++ {
		if res[i] == Exact {
			continue
		}
		j := letterIndex(guess[i])
		if j >= 0 && avail[j] > 0 {
			res[i] = Present
			avail[j]--
		}
	}
	return res
}

// letterIndex maps 'A'..'Z' to 0..25, anything else to -1.
func letterIndex(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}

// isLetters reports whether s is all uppercase ASCII letters.
func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
