package engine

// MoveResult is the outcome of a move, selection or bomb tap.
//
// Accepted is false when the input was ignored (wrong state, out of bounds,
// not adjacent); nothing changed. An accepted swap that forms no run is
// reverted and carries no events. When Pending is set, Events holds the first
// cascade stage and the caller must acknowledge it.
type MoveResult struct {
	Accepted   bool
	Swapped    bool // the swap was committed or a bomb detonated
	Bomb       bool // a color bomb detonated
	Events     []CascadeEvent
	ScoreDelta int
	Pending    bool
}

// ApplyMove swaps two adjacent cells directly. Only accepted from Idle.
func (e *Engine) ApplyMove(r1, c1, r2, c2 int) (MoveResult, error) {
	a, b := At(r1, c1), At(r2, c2)
	if e.session.State != StateIdle {
		e.reject("move", "session busy", "a", a, "b", b)
		return MoveResult{}, nil
	}
	if !e.grid.IsAdjacent(a, b) {
		e.reject("move", "cells not adjacent", "a", a, "b", b)
		return MoveResult{}, nil
	}
	return e.trySwap(a, b)
}

// Select feeds one tap into the selection state machine:
// Idle selects; selecting the same cell again deselects; a non-adjacent
// cell replaces the selection; an adjacent cell attempts the swap.
func (e *Engine) Select(r, c int) (MoveResult, error) {
	cell := At(r, c)
	if !e.grid.InBounds(cell) {
		e.reject("select", "out of bounds", "cell", cell)
		return MoveResult{}, nil
	}

	switch e.session.State {
	case StateIdle:
		e.session.selectCell(cell)
		return MoveResult{Accepted: true}, nil
	case StateTileSelected:
		prev := e.session.Selection
		switch {
		case prev == cell:
			e.session.clearSelection()
			e.session.State = StateIdle
			return MoveResult{Accepted: true}, nil
		case prev.Manhattan(cell) != 1:
			e.session.selectCell(cell)
			return MoveResult{Accepted: true}, nil
		}
		e.session.clearSelection()
		e.session.State = StateIdle
		return e.trySwap(prev, cell)
	default:
		e.reject("select", "session busy", "cell", cell)
		return MoveResult{}, nil
	}
}

// trySwap runs the swap transaction on two adjacent cells from Idle:
// swap, detect, then commit into a cascade or revert exactly.
func (e *Engine) trySwap(a, b Cell) (MoveResult, error) {
	ta, _ := e.grid.Get(a)
	tb, _ := e.grid.Get(b)

	if e.cfg.BombTrigger.OnSwap() {
		switch {
		case ta.IsBomb():
			return e.detonate(a, tb.Color)
		case tb.IsBomb():
			return e.detonate(b, ta.Color)
		}
	}

	e.grid.Swap(a, b)
	matched := Detect(e.grid)
	if len(matched) == 0 {
		e.grid.Swap(a, b)
		e.logger.Debug("swap reverted", "a", a, "b", b)
		return MoveResult{Accepted: true}, nil
	}

	e.logger.Debug("swap committed", "a", a, "b", b, "matched", len(matched))
	res, err := e.beginCascade(matched)
	res.Swapped = err == nil
	return res, err
}
