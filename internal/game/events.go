package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Action is one discrete input event from an input layer.
type Action int

const (
	ActionType Action = iota
	ActionBackspace
	ActionLeft
	ActionRight
	ActionSubmit
)

// Event is an Action plus, for ActionType, the letter typed.
type Event struct {
	Action Action
	Letter rune
}

// Outcome reports what an applied event did. Result is only meaningful for
// ActionSubmit.
type Outcome struct {
	OK     bool
	Result SubmitResult
}

var ErrUnknownKey = errors.New("game: unknown key")

// ParseKey maps a key name to an Event: a single letter, or one of
// "backspace", "left", "right", "enter" (case-insensitive).
func ParseKey(key string) (Event, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	switch k {
	case "backspace", "delete":
		return Event{Action: ActionBackspace}, nil
	case "left":
		return Event{Action: ActionLeft}, nil
	case "right":
		return Event{Action: ActionRight}, nil
	case "enter", "submit":
		return Event{Action: ActionSubmit}, nil
	}
	if utf8.RuneCountInString(k) == 1 {
		r, _ := utf8.DecodeRuneInString(k)
		if r >= 'a' && r <= 'z' {
			return Event{Action: ActionType, Letter: r - 'a' + 'A'}, nil
		}
	}
	return Event{}, ErrUnknownKey
}

// Apply runs one event against the session.
func (s *Session) Apply(ev Event) Outcome {
	switch ev.Action {
	case ActionType:
		return Outcome{OK: s.Type(ev.Letter)}
	case ActionBackspace:
		return Outcome{OK: s.Backspace()}
	case ActionLeft:
		return Outcome{OK: s.MoveLeft()}
	case ActionRight:
		return Outcome{OK: s.MoveRight()}
	case ActionSubmit:
		res := s.Submit()
		return Outcome{OK: res == Accepted, Result: res}
	}
	return Outcome{}
}
