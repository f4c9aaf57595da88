package game

// Cursor tracks the active cell and whether it accepts input.
// Position stays within [0,rows) x [0,cols) for the cursor's lifetime.
type Cursor struct {
	pos  Position
	mode Mode
	rows int
	cols int
}

func newCursor(rows, cols int) Cursor {
	return Cursor{rows: rows, cols: cols, mode: AwaitingInput}
}

// Position returns the active cell.
func (c Cursor) Position() Position { return c.pos }

// Mode returns the current input mode.
func (c Cursor) Mode() Mode { return c.mode }

// AcceptsInput reports whether the active cell takes a character.
func (c Cursor) AcceptsInput() bool { return c.mode == AwaitingInput }

// IsAt reports whether the cursor sits on p.
func (c Cursor) IsAt(p Position) bool { return c.pos == p }

// MoveRight advances one column and re-enables input.
// It fails at the last column or once locked.
func (c *Cursor) MoveRight() bool {
	if c.mode == Locked || c.pos.Col == c.cols-1 {
		return false
	}
	c.pos.Col++
	c.mode = AwaitingInput
	return true
}

// MoveLeft retreats one column. From RowFull the first call only unlocks
// the row and leaves the column where it is, so the last typed letter is
// the one a backspace edits next.
func (c *Cursor) MoveLeft() bool {
	if c.mode == Locked || c.pos.Col == 0 {
		return false
	}
	if c.mode == AwaitingInput {
		c.pos.Col--
	}
	c.mode = AwaitingInput
	return true
}

// MoveDown advances one row without touching the column.
func (c *Cursor) MoveDown() bool {
	if c.mode == Locked || c.pos.Row == c.rows-1 {
		return false
	}
	c.pos.Row++
	return true
}

// ResetColumn returns to the first column of the current row.
func (c *Cursor) ResetColumn() { c.pos.Col = 0 }

func (c *Cursor) markRowFull() { c.mode = RowFull }
func (c *Cursor) unlock()      { c.mode = AwaitingInput }
func (c *Cursor) lock()        { c.mode = Locked }
