package game

// CellView is the presentation form of a Cell.
type CellView struct {
	Char string   `json:"char"`
	Mark Feedback `json:"mark"`
}

// Snapshot is a read-only, serializable view of a session for
// presentation layers.
type Snapshot struct {
	Rows     int                 `json:"rows"`
	Cols     int                 `json:"cols"`
	Grid     [][]CellView        `json:"grid"`
	Cursor   Position            `json:"cursor"`
	Mode     Mode                `json:"mode"`
	State    State               `json:"state"`
	Attempts int                 `json:"attempts"`
	Hints    map[string]Feedback `json:"hints"`
	Answer   string              `json:"answer,omitempty"` // only once finished
}

// Snapshot captures the current session.
func (s *Session) Snapshot() Snapshot {
	grid := make([][]CellView, s.grid.rows)
	for r := range grid {
		grid[r] = make([]CellView, s.grid.cols)
		for c, cell := range s.grid.cells[r] {
			ch := ""
			if !cell.IsEmpty() {
				ch = string(cell.Char)
			}
			grid[r][c] = CellView{Char: ch, Mark: cell.Mark}
		}
	}
	hints := make(map[string]Feedback, len(s.hints))
	for k, v := range s.hints {
		hints[string(k)] = v
	}
	answer, _ := s.Reveal()
	return Snapshot{
		Rows:     s.grid.rows,
		Cols:     s.grid.cols,
		Grid:     grid,
		Cursor:   s.cursor.Position(),
		Mode:     s.cursor.Mode(),
		State:    s.state,
		Attempts: s.attempts,
		Hints:    hints,
		Answer:   answer,
	}
}
