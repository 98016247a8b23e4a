package engine

// Hint points the player at a cell worth moving.
// When HasMove is set, Move is the legal swap the cell belongs to.
type Hint struct {
	Cell    Cell
	Move    Move
	HasMove bool
}

// FindMoves returns every adjacent swap that would form at least one run,
// scanning row-major and trying the right neighbour before the one below.
// Bombs take part by their stored color. The grid is not modified.
func FindMoves(g *Grid) []Move {
	work := g.Clone()
	var moves []Move
	for r := 0; r < work.rows; r++ {
		for c := 0; c < work.cols; c++ {
			a := At(r, c)
			for _, b := range [2]Cell{At(r, c+1), At(r+1, c)} {
				if swapFormsRun(work, a, b) {
					moves = append(moves, Move{A: a, B: b})
				}
			}
		}
	}
	return moves
}

// HasLegalMove reports whether any adjacent swap forms a run.
func HasLegalMove(g *Grid) bool {
	_, ok := firstMove(g)
	return ok
}

func firstMove(g *Grid) (Move, bool) {
	work := g.Clone()
	for r := 0; r < work.rows; r++ {
		for c := 0; c < work.cols; c++ {
			a := At(r, c)
			for _, b := range [2]Cell{At(r, c+1), At(r+1, c)} {
				if swapFormsRun(work, a, b) {
					return Move{A: a, B: b}, true
				}
			}
		}
	}
	return Move{}, false
}

// swapFormsRun tries the swap on g, checks the two touched cells and undoes it.
func swapFormsRun(g *Grid, a, b Cell) bool {
	if !g.IsAdjacent(a, b) {
		return false
	}
	ta, okA := g.Get(a)
	tb, okB := g.Get(b)
	if !okA || !okB || ta.Color == tb.Color {
		return false
	}
	g.Swap(a, b)
	formed := completesRun(g, a) || completesRun(g, b)
	g.Swap(a, b)
	return formed
}

// hint picks the first cell of the first legal move. Without one it falls
// back to the first bomb, then to the top-left occupied cell.
func (e *Engine) hint() Hint {
	if m, ok := firstMove(e.grid); ok {
		return Hint{Cell: m.A, Move: m, HasMove: true}
	}
	if bombs := e.grid.Bombs(); len(bombs) > 0 {
		return Hint{Cell: bombs[0]}
	}
	for i, s := range e.grid.slots {
		if s.filled {
			return Hint{Cell: e.grid.cellAt(i)}
		}
	}
	return Hint{}
}
