package game

import "strings"

// Grid is the rows x cols store of letter cells. Dimensions are fixed at
// construction; callers address it only through a Cursor that is already
// bounded, so the grid itself does no bounds checking.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{Char: Empty}
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// WriteAtCursor stores letter at the cursor's cell. Writing the last column
// puts the cursor into RowFull.
func (g *Grid) WriteAtCursor(cur *Cursor, letter rune) {
	p := cur.Position()
	g.cells[p.Row][p.Col].Char = letter
	if p.Col == g.cols-1 {
		cur.markRowFull()
	}
}

// ReadAtCursor returns the cell under the cursor.
func (g *Grid) ReadAtCursor(cur Cursor) Cell {
	p := cur.Position()
	return g.cells[p.Row][p.Col]
}

// RowText concatenates the characters of row in column order. Empty cells
// contribute a literal blank.
func (g *Grid) RowText(row int) string {
	var b strings.Builder
	b.Grow(g.cols)
	for _, c := range g.cells[row] {
		b.WriteRune(c.Char)
	}
	return b.String()
}

// CurrentRowText is RowText for the cursor's row.
func (g *Grid) CurrentRowText(cur Cursor) string { return g.RowText(cur.Position().Row) }

// RowIsComplete reports whether no cell in row is empty.
func (g *Grid) RowIsComplete(row int) bool {
	for _, c := range g.cells[row] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Cell returns a copy of the cell at (row, col).
func (g *Grid) Cell(row, col int) Cell { return g.cells[row][col] }

// Row returns a copy of one row.
func (g *Grid) Row(row int) []Cell {
	out := make([]Cell, g.cols)
	copy(out, g.cells[row])
	return out
}

func (g *Grid) mark(row int, marks []Feedback) {
	for c, m := range marks {
		g.cells[row][c].Mark = m
	}
}

// clearAtCursor empties the letter under cur; its mark is left alone.
func (g *Grid) clearAtCursor(cur Cursor) {
	p := cur.Position()
	g.cells[p.Row][p.Col].Char = Empty
}

func (g *Grid) clearRow(row int) {
	for c := range g.cells[row] {
		g.cells[row][c] = Cell{Char: Empty}
	}
}
