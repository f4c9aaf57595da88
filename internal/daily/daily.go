// Package daily derives a date-keyed target so every player gets the same
// word on the same UTC day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Picker is the subset of a word list needed to choose a daily word.
type Picker interface {
	Len() int
	At(i int) string
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns HMAC-SHA256(salt, DateKey(t)) mod n, or 0 when n <= 0.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Word returns the date key and the word chosen from list for t.
func Word(t time.Time, salt string, list Picker) (date, word string) {
	date = DateKey(t)
	if list.Len() == 0 {
		return date, ""
	}
	return date, list.At(WordIndex(t, salt, list.Len()))
}
