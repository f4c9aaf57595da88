// internal/game/types.go
//
// Core type definitions for the grid engine.
// Defines:
//   - Feedback: per-letter result of a submitted row (exact/present/absent).
//   - Cell, Position: the addressable unit of the grid.
//   - Mode: the cursor's input mode (awaiting input, row full, locked).
//   - State: the Playing/Won/Lost lifecycle.
//   - SubmitResult: the outcome of a row submission.

package game

import (
	"encoding/json"
	"errors"
)

// Empty is the input character of a cell nobody has typed into yet.
const Empty = ' '

// Feedback is the classification of a single letter in a submitted row.
// Values are ordered so that a better mark compares greater.
type Feedback int

const (
	Unmarked Feedback = iota // row not submitted yet
	Absent                   // no unconsumed occurrence in the target
	Present                  // occurs in the target, elsewhere
	Exact                    // same letter, same position
)

func (f Feedback) String() string {
	switch f {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	default:
		return "unmarked"
	}
}

// MarshalJSON encodes the feedback as its lowercase name.
func (f Feedback) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

// Position addresses one cell, zero-based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell holds one typed character and the mark it received on submission.
type Cell struct {
	Char rune
	Mark Feedback
}

// IsEmpty reports whether nothing was typed into the cell.
func (c Cell) IsEmpty() bool { return c.Char == Empty }

// Mode is the cursor's input mode.
//
//   - AwaitingInput: the active cell accepts a character.
//   - RowFull: the last column was written; typing is blocked until the
//     row is submitted or a backspace unlocks it.
//   - Locked: the game is over; nothing moves.
type Mode int

const (
	AwaitingInput Mode = iota
	RowFull
	Locked
)

func (m Mode) String() string {
	switch m {
	case RowFull:
		return "row_full"
	case Locked:
		return "locked"
	default:
		return "awaiting_input"
	}
}

// MarshalJSON encodes the mode as its name.
func (m Mode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

// State is the session lifecycle. Won and Lost are terminal.
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s == Won || s == Lost }

// MarshalJSON encodes the state as its name.
func (s State) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// SubmitResult is the outcome of Session.Submit. Every rejection leaves the
// session untouched.
type SubmitResult int

const (
	Accepted SubmitResult = iota
	RejectedIncomplete
	RejectedNotInDictionary
	RejectedFinished
)

func (r SubmitResult) String() string {
	switch r {
	case RejectedIncomplete:
		return "incomplete"
	case RejectedNotInDictionary:
		return "not_in_dictionary"
	case RejectedFinished:
		return "finished"
	default:
		return "accepted"
	}
}

// MarshalJSON encodes the result as its name.
func (r SubmitResult) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

// Dictionary is the membership test the engine needs from a word list.
type Dictionary interface {
	Contains(word string) bool
}

var (
	ErrSize          = errors.New("game: rows and cols must be positive")
	ErrInvalidTarget = errors.New("game: target must be letters A-Z")
	ErrTargetLength  = errors.New("game: target length does not match column count")
	ErrNoDictionary  = errors.New("game: dictionary is required")
)
