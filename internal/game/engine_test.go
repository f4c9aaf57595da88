package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSet map[string]bool

func (w wordSet) Contains(word string) bool { return w[word] }

var testDict = wordSet{
	"CRANE": true, "ALLEY": true, "LEVEL": true, "SPEED": true,
	"ERASE": true, "BUILT": true, "HEART": true, "EARTH": true,
}

func newTestSession(t *testing.T, target string, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(testDict, mustTarget(t, target), opts...)
	require.NoError(t, err)
	return s
}

func typeWord(s *Session, w string) {
	for _, r := range w {
		s.Type(r)
	}
}

func TestNewSessionValidation(t *testing.T) {
	tg := mustTarget(t, "CRANE")

	_, err := NewSession(testDict, tg, WithSize(0, 5))
	assert.ErrorIs(t, err, ErrSize)

	_, err = NewSession(nil, tg)
	assert.ErrorIs(t, err, ErrNoDictionary)

	_, err = NewSession(testDict, tg, WithSize(6, 4))
	assert.ErrorIs(t, err, ErrTargetLength)

	_, err = NewSession(testDict, Target{})
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestNewSessionStartsEmpty(t *testing.T) {
	s := newTestSession(t, "CRANE")
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, 6, s.Rows())
	assert.Equal(t, 5, s.Cols())
	assert.Equal(t, Position{}, s.Cursor().Position())
	assert.True(t, s.Cursor().AcceptsInput())
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Cols(); c++ {
			assert.True(t, s.Cell(r, c).IsEmpty())
			assert.Equal(t, Unmarked, s.Cell(r, c).Mark)
		}
	}
	_, ok := s.Reveal()
	assert.False(t, ok)
}

func TestTypeFillsRowAndLocks(t *testing.T) {
	s := newTestSession(t, "CRANE")
	typeWord(s, "heart")
	assert.Equal(t, "HEART", s.CurrentRowText())
	assert.Equal(t, Position{Row: 0, Col: 4}, s.Cursor().Position())
	assert.Equal(t, RowFull, s.Cursor().Mode())

	assert.False(t, s.Type('X'), "row full")
	assert.Equal(t, "HEART", s.CurrentRowText())
}

func TestTypeRejectsNonLetters(t *testing.T) {
	s := newTestSession(t, "CRANE")
	assert.False(t, s.Type('1'))
	assert.False(t, s.Type(' '))
	assert.False(t, s.Type('é'))
	assert.Equal(t, "     ", s.CurrentRowText())
}

func TestBackspace(t *testing.T) {
	s := newTestSession(t, "CRANE")
	assert.False(t, s.Backspace(), "nothing to delete")

	typeWord(s, "HEART")
	require.Equal(t, RowFull, s.Cursor().Mode())

	assert.True(t, s.Backspace())
	assert.Equal(t, "HEAR ", s.CurrentRowText())
	assert.Equal(t, 4, s.Cursor().Position().Col)
	assert.True(t, s.Cursor().AcceptsInput())

	assert.True(t, s.Backspace())
	assert.Equal(t, "HEA  ", s.CurrentRowText())
	assert.Equal(t, 3, s.Cursor().Position().Col)

	typeWord(s, "RT")
	assert.Equal(t, "HEART", s.CurrentRowText())
}

func TestBackspaceClearsFirstColumnInPlace(t *testing.T) {
	s := newTestSession(t, "CRANE")
	s.Type('H')
	s.MoveLeft()
	require.Equal(t, 0, s.Cursor().Position().Col)

	assert.True(t, s.Backspace())
	assert.Equal(t, "     ", s.CurrentRowText())
	assert.False(t, s.Backspace())
}

func TestBackspaceSingleColumn(t *testing.T) {
	s, err := NewSession(wordSet{"A": true}, mustTarget(t, "A"), WithSize(2, 1))
	require.NoError(t, err)
	s.Type('B')
	require.Equal(t, RowFull, s.Cursor().Mode())
	assert.True(t, s.Backspace())
	assert.Equal(t, " ", s.CurrentRowText())
	assert.True(t, s.Cursor().AcceptsInput())
}

func TestSubmitIncompleteRow(t *testing.T) {
	s := newTestSession(t, "CRANE")
	typeWord(s, "HEAR")
	before := s.Snapshot()

	assert.Equal(t, RejectedIncomplete, s.Submit())
	assert.Equal(t, before, s.Snapshot())
}

func TestSubmitNotInDictionary(t *testing.T) {
	s := newTestSession(t, "CRANE")
	typeWord(s, "QWERT")
	before := s.Snapshot()

	assert.Equal(t, RejectedNotInDictionary, s.Submit())
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 0, s.Attempts())
}

func TestSubmitMarksAndAdvances(t *testing.T) {
	s := newTestSession(t, "ALLEY")
	typeWord(s, "LEVEL")
	assert.Equal(t, Accepted, s.Submit())

	marks := make([]Feedback, 0, 5)
	for _, c := range s.Row(0) {
		marks = append(marks, c.Mark)
	}
	assert.Equal(t, []Feedback{Present, Absent, Absent, Exact, Present}, marks)
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, Position{Row: 1, Col: 0}, s.Cursor().Position())
	assert.True(t, s.Cursor().AcceptsInput())
	assert.Equal(t, 1, s.Attempts())

	hints := s.Hints()
	assert.Equal(t, Exact, hints['E'], "best mark wins")
	assert.Equal(t, Present, hints['L'])
	assert.Equal(t, Absent, hints['V'])
}

func TestSubmitWinsOnAnyRow(t *testing.T) {
	for row := 0; row < 6; row++ {
		s := newTestSession(t, "CRANE")
		for i := 0; i < row; i++ {
			typeWord(s, "HEART")
			require.Equal(t, Accepted, s.Submit())
		}
		typeWord(s, "CRANE")
		assert.Equal(t, Accepted, s.Submit())
		assert.Equal(t, Won, s.State(), "row %d", row)
		for _, c := range s.Row(row) {
			assert.Equal(t, Exact, c.Mark)
		}
		assert.Equal(t, Locked, s.Cursor().Mode())
	}
}

func TestSubmitLosesAfterLastRow(t *testing.T) {
	s := newTestSession(t, "CRANE")
	for i := 0; i < 5; i++ {
		typeWord(s, "BUILT")
		require.Equal(t, Accepted, s.Submit())
		require.Equal(t, Playing, s.State())
	}
	typeWord(s, "BUILT")
	assert.Equal(t, Accepted, s.Submit())
	assert.Equal(t, Lost, s.State())
	assert.Equal(t, 6, s.Attempts())
	assert.Equal(t, 5, s.Cursor().Position().Row)

	answer, ok := s.Reveal()
	assert.True(t, ok)
	assert.Equal(t, "CRANE", answer)
}

func TestTerminalStatesIgnoreInput(t *testing.T) {
	s := newTestSession(t, "CRANE", WithSize(2, 5))
	typeWord(s, "CRANE")
	require.Equal(t, Accepted, s.Submit())
	require.Equal(t, Won, s.State())
	before := s.Snapshot()

	assert.Equal(t, RejectedFinished, s.Submit())
	assert.False(t, s.Type('A'))
	assert.False(t, s.Backspace())
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.ClearRow())
	assert.Equal(t, Won, s.State())
	assert.Equal(t, before, s.Snapshot())
}

func TestLostIsTerminal(t *testing.T) {
	s := newTestSession(t, "CRANE", WithSize(1, 5))
	typeWord(s, "HEART")
	require.Equal(t, Accepted, s.Submit())
	require.Equal(t, Lost, s.State())
	assert.Equal(t, RejectedFinished, s.Submit())
	assert.Equal(t, Lost, s.State())
}

func TestClearRow(t *testing.T) {
	s := newTestSession(t, "CRANE")
	typeWord(s, "HEART")
	assert.True(t, s.ClearRow())
	assert.Equal(t, "     ", s.CurrentRowText())
	assert.Equal(t, Position{}, s.Cursor().Position())
	assert.True(t, s.Cursor().AcceptsInput())
}

func TestMoveThenOverwrite(t *testing.T) {
	s := newTestSession(t, "CRANE")
	typeWord(s, "HEA")
	assert.True(t, s.MoveLeft())
	assert.True(t, s.MoveLeft())
	s.Type('X')
	assert.Equal(t, "HXA  ", s.CurrentRowText())
	assert.Equal(t, 2, s.Cursor().Position().Col)
}

func TestSnapshotJSON(t *testing.T) {
	s := newTestSession(t, "CRANE", WithSize(1, 5))
	typeWord(s, "HEART")
	require.Equal(t, Accepted, s.Submit())

	b, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)
	out := string(b)
	assert.True(t, strings.Contains(out, `"state":"lost"`), out)
	assert.True(t, strings.Contains(out, `"answer":"CRANE"`), out)
	assert.True(t, strings.Contains(out, `"mode":"locked"`), out)
	assert.True(t, strings.Contains(out, `{"char":"H","mark":"absent"}`), out)
}

func TestSnapshotHidesAnswerWhilePlaying(t *testing.T) {
	s := newTestSession(t, "CRANE")
	b, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "CRANE")
	assert.NotContains(t, string(b), `"answer"`)
}
