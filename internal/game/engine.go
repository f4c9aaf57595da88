// internal/game/engine.go
//
// Session state machine for a single game.
// Responsibilities:
//   - Own the grid, cursor, target word and lifecycle state of one game.
//   - Apply input events one at a time (type, backspace, move, submit).
//   - Validate submitted rows against the dictionary.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - A Session is not safe for concurrent use; adapters serialize access.
//   - Rejections are reported as SubmitResult values and never mutate state.
//   - Nothing here performs I/O.
package game

import "unicode"

const (
	defaultRows = 6
	defaultCols = 5
)

// Session is one game: grid, cursor, target and state.
type Session struct {
	dict     Dictionary
	target   Target
	grid     *Grid
	cursor   Cursor
	state    State
	attempts int
	hints    map[rune]Feedback
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	rows, cols int
}

// WithSize overrides the default 6x5 grid.
func WithSize(rows, cols int) Option {
	return func(c *sessionConfig) {
		c.rows, c.cols = rows, cols
	}
}

// NewSession starts a game against target. The target must be as long as a
// row; the dictionary decides which completed rows may be submitted.
func NewSession(dict Dictionary, target Target, opts ...Option) (*Session, error) {
	cfg := sessionConfig{rows: defaultRows, cols: defaultCols}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rows <= 0 || cfg.cols <= 0 {
		return nil, ErrSize
	}
	if dict == nil {
		return nil, ErrNoDictionary
	}
	if target.Len() == 0 {
		return nil, ErrInvalidTarget
	}
	if target.Len() != cfg.cols {
		return nil, ErrTargetLength
	}
	return &Session{
		dict:   dict,
		target: target,
		grid:   newGrid(cfg.rows, cfg.cols),
		cursor: newCursor(cfg.rows, cfg.cols),
		state:  Playing,
		hints:  make(map[rune]Feedback),
	}, nil
}

// Type writes letter at the cursor and advances. It is ignored unless the
// game is in progress and the active cell accepts input. Letters are
// uppercased; anything outside A-Z is refused.
func (s *Session) Type(letter rune) bool {
	if s.state.Finished() || !s.cursor.AcceptsInput() {
		return false
	}
	letter = unicode.ToUpper(letter)
	if letter < 'A' || letter > 'Z' {
		return false
	}
	s.grid.WriteAtCursor(&s.cursor, letter)
	s.cursor.MoveRight()
	return true
}

// Backspace clears the previous letter. From RowFull the cursor stays on
// the last column and that cell is cleared. At column 0 it clears the
// cell under the cursor, if any.
func (s *Session) Backspace() bool {
	if s.state.Finished() {
		return false
	}
	if !s.cursor.MoveLeft() {
		// At column 0 there is nowhere to go; clear the cell in place.
		if s.cursor.Mode() != RowFull && s.grid.ReadAtCursor(s.cursor).IsEmpty() {
			return false
		}
		s.cursor.unlock()
	}
	s.grid.clearAtCursor(s.cursor)
	return true
}

// MoveLeft moves the cursor left while the game is in progress.
func (s *Session) MoveLeft() bool {
	if s.state.Finished() {
		return false
	}
	return s.cursor.MoveLeft()
}

// MoveRight moves the cursor right while the game is in progress.
func (s *Session) MoveRight() bool {
	if s.state.Finished() {
		return false
	}
	return s.cursor.MoveRight()
}

// Submit validates the cursor's row and, if it is a complete dictionary
// word, marks it and advances the lifecycle.
//
// State transitions:
//   - Row text equals the target → Won.
//   - Else, last row → Lost.
//   - Else the cursor moves to the start of the next row.
func (s *Session) Submit() SubmitResult {
	if s.state.Finished() {
		return RejectedFinished
	}
	row := s.cursor.Position().Row
	if !s.grid.RowIsComplete(row) {
		return RejectedIncomplete
	}
	text := s.grid.RowText(row)
	if !s.dict.Contains(text) {
		return RejectedNotInDictionary
	}

	marks := Score(text, s.target)
	s.grid.mark(row, marks)
	s.recordHints(text, marks)
	s.attempts++

	switch {
	case text == s.target.Word():
		s.finish(Won)
	case row == s.grid.rows-1:
		s.finish(Lost)
	default:
		s.cursor.MoveDown()
		s.cursor.ResetColumn()
		s.cursor.unlock()
	}
	return Accepted
}

// ClearRow empties the cursor's row and returns the cursor to its start.
// Used by adapters that accept whole words instead of keystrokes.
func (s *Session) ClearRow() bool {
	if s.state.Finished() {
		return false
	}
	s.grid.clearRow(s.cursor.Position().Row)
	s.cursor.ResetColumn()
	s.cursor.unlock()
	return true
}

func (s *Session) finish(st State) {
	s.state = st
	s.cursor.lock()
}

func (s *Session) recordHints(text string, marks []Feedback) {
	for i, m := range marks {
		r := rune(text[i])
		if m > s.hints[r] {
			s.hints[r] = m
		}
	}
}

// State reports the lifecycle state.
func (s *Session) State() State { return s.state }

// Rows is the number of attempts the grid allows.
func (s *Session) Rows() int { return s.grid.rows }

// Cols is the word length.
func (s *Session) Cols() int { return s.grid.cols }

// Attempts is the number of accepted submissions so far.
func (s *Session) Attempts() int { return s.attempts }

// Cursor returns a copy of the cursor.
func (s *Session) Cursor() Cursor { return s.cursor }

// Cell returns the cell at (row, col). Callers stay within Rows x Cols.
func (s *Session) Cell(row, col int) Cell { return s.grid.Cell(row, col) }

// Row returns a copy of one row.
func (s *Session) Row(row int) []Cell { return s.grid.Row(row) }

// CurrentRowText is the text of the cursor's row, blanks included.
func (s *Session) CurrentRowText() string { return s.grid.CurrentRowText(s.cursor) }

// Reveal returns the target once the game is over.
func (s *Session) Reveal() (string, bool) {
	if !s.state.Finished() {
		return "", false
	}
	return s.target.Word(), true
}

// Hints returns the best mark seen so far for every submitted letter.
func (s *Session) Hints() map[rune]Feedback {
	out := make(map[rune]Feedback, len(s.hints))
	for k, v := range s.hints {
		out[k] = v
	}
	return out
}
