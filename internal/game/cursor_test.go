package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorMoveRight(t *testing.T) {
	c := newCursor(6, 5)
	for i := 1; i <= 4; i++ {
		assert.True(t, c.MoveRight())
		assert.Equal(t, i, c.Position().Col)
	}
	assert.False(t, c.MoveRight(), "last column")
	assert.Equal(t, 4, c.Position().Col)
	assert.True(t, c.AcceptsInput())
}

func TestCursorMoveRightReenablesInput(t *testing.T) {
	c := newCursor(6, 5)
	c.markRowFull()
	assert.True(t, c.MoveRight())
	assert.Equal(t, AwaitingInput, c.Mode())
}

func TestCursorMoveLeft(t *testing.T) {
	c := newCursor(6, 5)
	assert.False(t, c.MoveLeft(), "first column")
	assert.Equal(t, 0, c.Position().Col)

	c.MoveRight()
	c.MoveRight()
	assert.True(t, c.MoveLeft())
	assert.Equal(t, 1, c.Position().Col)
}

func TestCursorMoveLeftFromRowFullOnlyUnlocks(t *testing.T) {
	c := newCursor(6, 5)
	for c.MoveRight() {
	}
	c.markRowFull()

	assert.True(t, c.MoveLeft())
	assert.Equal(t, 4, c.Position().Col, "first left consumes RowFull")
	assert.Equal(t, AwaitingInput, c.Mode())

	assert.True(t, c.MoveLeft())
	assert.Equal(t, 3, c.Position().Col)
}

func TestCursorMoveDown(t *testing.T) {
	c := newCursor(3, 5)
	c.MoveRight()
	assert.True(t, c.MoveDown())
	assert.True(t, c.MoveDown())
	assert.False(t, c.MoveDown(), "last row")
	assert.Equal(t, Position{Row: 2, Col: 1}, c.Position(), "column is kept")

	c.ResetColumn()
	assert.Equal(t, Position{Row: 2, Col: 0}, c.Position())
}

func TestCursorLocked(t *testing.T) {
	c := newCursor(6, 5)
	c.MoveRight()
	c.lock()
	assert.False(t, c.MoveRight())
	assert.False(t, c.MoveLeft())
	assert.False(t, c.MoveDown())
	assert.False(t, c.AcceptsInput())
	assert.Equal(t, Position{Row: 0, Col: 1}, c.Position())
}

func TestCursorIsAt(t *testing.T) {
	c := newCursor(6, 5)
	c.MoveRight()
	assert.True(t, c.IsAt(Position{Row: 0, Col: 1}))
	assert.False(t, c.IsAt(Position{Row: 0, Col: 0}))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "awaiting_input", AwaitingInput.String())
	assert.Equal(t, "row_full", RowFull.String())
	assert.Equal(t, "locked", Locked.String())
}
