package engine

// BombClearSet returns every cell whose token has the clear color, plus the
// bomb cell itself, in row-major order without duplicates. The set may hold
// only the bomb when no other token has that color.
func BombClearSet(g *Grid, bomb Cell, clear Color) []Cell {
	marked := make([]bool, len(g.slots))
	for i, s := range g.slots {
		if s.filled && s.token.Color == clear {
			marked[i] = true
		}
	}
	if g.InBounds(bomb) {
		marked[g.index(bomb)] = true
	}
	return g.collect(marked)
}

// SelectSingle detonates a bomb by selecting it alone. It clears every token
// of the bomb's own color. Requires a trigger mode that allows tapping and an
// Idle or TileSelected session; any pending selection is dropped.
func (e *Engine) SelectSingle(r, c int) (MoveResult, error) {
	cell := At(r, c)
	if !e.cfg.BombTrigger.OnTap() {
		e.reject("tap", "tap trigger disabled", "cell", cell)
		return MoveResult{}, nil
	}
	if s := e.session.State; s != StateIdle && s != StateTileSelected {
		e.reject("tap", "session busy", "cell", cell)
		return MoveResult{}, nil
	}
	tok, ok := e.grid.Get(cell)
	if !ok || !tok.IsBomb() {
		e.reject("tap", "not a bomb", "cell", cell)
		return MoveResult{}, nil
	}

	e.session.clearSelection()
	e.session.State = StateIdle
	return e.detonate(cell, tok.Color)
}

// detonate clears the bomb and every token of the clear color as the first
// cascade pass. The swap itself is never performed.
func (e *Engine) detonate(bomb Cell, clear Color) (MoveResult, error) {
	cells := BombClearSet(e.grid, bomb, clear)
	e.logger.Debug("bomb detonated", "cell", bomb, "color", clear, "cleared", len(cells))
	res, err := e.beginCascade(cells)
	if err == nil {
		res.Swapped = true
		res.Bomb = true
	}
	return res, err
}
