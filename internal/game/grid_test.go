package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridWriteAndClearAtCursor(t *testing.T) {
	g := newGrid(2, 3)
	c := newCursor(2, 3)

	g.WriteAtCursor(&c, 'A')
	c.MoveRight()
	g.WriteAtCursor(&c, 'B')
	assert.Equal(t, "AB ", g.RowText(0))
	assert.False(t, g.RowIsComplete(0))

	g.clearAtCursor(c)
	assert.Equal(t, "A  ", g.RowText(0))
	assert.True(t, g.ReadAtCursor(c).IsEmpty())
	assert.Equal(t, Cell{Char: 'A'}, g.Cell(0, 0), "other cells untouched")
}

func TestGridWriteLastColumnMarksRowFull(t *testing.T) {
	g := newGrid(1, 2)
	c := newCursor(1, 2)
	c.MoveRight()
	g.WriteAtCursor(&c, 'Z')
	assert.Equal(t, RowFull, c.Mode())

	c.unlock()
	g.clearAtCursor(c)
	assert.Equal(t, "  ", g.RowText(0))
}
