package engine

// maxBoardAttempts bounds regeneration of a board with no legal move.
const maxBoardAttempts = 100

// buildBoard creates the starting grid for a new session.
func (e *Engine) buildBoard() error {
	if e.layout != nil {
		return e.buildFromLayout()
	}

	for attempt := 1; attempt <= maxBoardAttempts; attempt++ {
		e.grid = NewGrid(e.cfg.Rows, e.cfg.Cols)
		if err := e.paint(e.grid, e.grid.IsEmpty); err != nil {
			return err
		}
		if HasLegalMove(e.grid) {
			break
		}
		e.logger.Debug("generated board has no legal move", "attempt", attempt)
	}

	if e.session.Mode == ModeRush {
		return e.placeBombs(RushBombs)
	}
	return nil
}

// buildFromLayout copies the fixed layout and fills its empty cells.
// The layout's own bomb mark, if any, stands in for the Rush bomb; none is
// placed at random.
func (e *Engine) buildFromLayout() error {
	e.grid = NewGrid(e.cfg.Rows, e.cfg.Cols)
	for r, row := range e.layout {
		for c, lc := range row {
			if lc.Empty {
				continue
			}
			special := SpecialNone
			if lc.Bomb {
				special = SpecialColorBomb
			}
			e.grid.Set(At(r, c), e.newToken(lc.Color, special))
		}
	}
	return e.paint(e.grid, e.grid.IsEmpty)
}

// paint assigns colors row by row to every cell selected by want, avoiding
// colors that would complete a run with the cells above or to the left.
// Empty cells receive new tokens; filled cells keep their ID and special.
func (e *Engine) paint(g *Grid, want func(Cell) bool) error {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := At(r, c)
			if !want(cell) {
				continue
			}
			color, err := e.drawColorExcept(bannedColors(g, cell))
			if err != nil {
				return err
			}
			if tok, ok := g.Get(cell); ok {
				tok.Color = color
				g.Set(cell, tok)
			} else {
				g.Set(cell, e.newToken(color, SpecialNone))
			}
		}
	}
	return nil
}

// bannedColors lists colors that would form a run of three at c with the
// two cells to its left or the two cells above it.
func bannedColors(g *Grid, c Cell) []Color {
	var banned []Color
	for _, d := range [2]Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}} {
		a, okA := g.Get(Cell{Row: c.Row - d.Row, Col: c.Col - d.Col})
		b, okB := g.Get(Cell{Row: c.Row - 2*d.Row, Col: c.Col - 2*d.Col})
		if okA && okB && a.Color == b.Color && !containsColor(banned, a.Color) {
			banned = append(banned, a.Color)
		}
	}
	return banned
}

// placeBombs turns n distinct tokens into color bombs. Colors are unchanged,
// so a run-free board stays run-free.
func (e *Engine) placeBombs(n int) error {
	size := e.grid.Size()
	for placed := 0; placed < n; placed++ {
		i := e.src.IntN(size)
		if i < 0 || i >= size {
			return e.fail(invariantf(CodeSourceRange, "source returned %d for %d cells", i, size))
		}
		for step := 0; step < size; step++ {
			cell := e.grid.cellAt((i + step) % size)
			tok, _ := e.grid.Get(cell)
			if tok.IsBomb() {
				continue
			}
			tok.Special = SpecialColorBomb
			e.grid.Set(cell, tok)
			break
		}
	}
	return nil
}

// reshuffle re-colors every token until the board is run-free and has a
// legal move, keeping token IDs. It emits one Shuffle event per cell.
func (e *Engine) reshuffle() ([]CascadeEvent, error) {
	all := func(Cell) bool { return true }
	attempt := 1
	for ; attempt <= maxBoardAttempts; attempt++ {
		if err := e.paint(e.grid, all); err != nil {
			return nil, err
		}
		if HasLegalMove(e.grid) {
			break
		}
	}
	e.logger.Debug("board reshuffled", "attempts", attempt)

	events := make([]CascadeEvent, 0, e.grid.Size())
	for i := range e.grid.slots {
		cell := e.grid.cellAt(i)
		tok, _ := e.grid.Get(cell)
		events = append(events, ShuffleEvent(cell, tok))
	}
	return events, nil
}
