package engine

// MinRun is the shortest line of equal colors that clears.
const MinRun = 3

// Run is a maximal horizontal or vertical line of at least MinRun
// same-colored tokens.
type Run struct {
	Start      Cell
	Length     int
	Horizontal bool
	Color      Color
}

// Cells returns the cells covered by the run, from Start outward.
func (r Run) Cells() []Cell {
	cells := make([]Cell, r.Length)
	for i := range cells {
		if r.Horizontal {
			cells[i] = Cell{Row: r.Start.Row, Col: r.Start.Col + i}
		} else {
			cells[i] = Cell{Row: r.Start.Row + i, Col: r.Start.Col}
		}
	}
	return cells
}

// DetectRuns scans every row left to right, then every column top to bottom,
// and returns each maximal run. Empty cells break runs; bombs match by their
// stored color.
func DetectRuns(g *Grid) []Run {
	var runs []Run
	for r := 0; r < g.rows; r++ {
		runs = scanLine(g, At(r, 0), 0, 1, g.cols, runs)
	}
	for c := 0; c < g.cols; c++ {
		runs = scanLine(g, At(0, c), 1, 0, g.rows, runs)
	}
	return runs
}

func scanLine(g *Grid, start Cell, dr, dc, n int, runs []Run) []Run {
	horizontal := dc == 1
	runStart, runLen := 0, 0
	var runColor Color

	emit := func() {
		if runLen >= MinRun {
			runs = append(runs, Run{
				Start:      Cell{Row: start.Row + dr*runStart, Col: start.Col + dc*runStart},
				Length:     runLen,
				Horizontal: horizontal,
				Color:      runColor,
			})
		}
	}

	for i := 0; i < n; i++ {
		tok, ok := g.Get(Cell{Row: start.Row + dr*i, Col: start.Col + dc*i})
		if ok && runLen > 0 && tok.Color == runColor {
			runLen++
			continue
		}
		emit()
		if ok {
			runStart, runLen, runColor = i, 1, tok.Color
		} else {
			runLen = 0
		}
	}
	emit()
	return runs
}

// Detect returns the union of all run cells, deduplicated, in row-major order.
// An L or T shape shares its corner cell, which appears once.
func Detect(g *Grid) []Cell {
	runs := DetectRuns(g)
	if len(runs) == 0 {
		return nil
	}
	marked := make([]bool, len(g.slots))
	for _, run := range runs {
		for _, c := range run.Cells() {
			marked[g.index(c)] = true
		}
	}
	return g.collect(marked)
}

// lineLength counts same-colored tokens through c along (dr, dc) in both directions.
func lineLength(g *Grid, c Cell, dr, dc int) int {
	tok, ok := g.Get(c)
	if !ok {
		return 0
	}
	n := 1
	for _, sign := range [2]int{-1, 1} {
		for step := 1; ; step++ {
			next, ok := g.Get(Cell{Row: c.Row + sign*step*dr, Col: c.Col + sign*step*dc})
			if !ok || next.Color != tok.Color {
				break
			}
			n++
		}
	}
	return n
}

// completesRun reports whether c is part of a run of at least MinRun.
func completesRun(g *Grid, c Cell) bool {
	return lineLength(g, c, 0, 1) >= MinRun || lineLength(g, c, 1, 0) >= MinRun
}
