package engine

import "github.com/vovakirdan/gemcascade/internal/core"

// slot is one grid position: empty or holding exactly one token.
type slot struct {
	filled bool
	token  Token
}

// Grid is the R×C board. Slots are stored in row-major order:
// index = row*cols + col. Dimensions are fixed for the grid's lifetime.
type Grid struct {
	rows   int
	cols   int
	bounds core.Rect
	slots  []slot
}

// NewGrid creates a grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:   rows,
		cols:   cols,
		bounds: core.NewRect(0, 0, cols, rows),
		slots:  make([]slot, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return g.bounds.Area() }

func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

func (g *Grid) cellAt(i int) Cell {
	return Cell{Row: i / g.cols, Col: i % g.cols}
}

// InBounds returns true if the cell is within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return g.bounds.Contains(c.Col, c.Row)
}

// Get returns a copy of the token at c.
// Returns false for empty or out-of-bounds cells.
func (g *Grid) Get(c Cell) (Token, bool) {
	if !g.InBounds(c) {
		return Token{}, false
	}
	s := g.slots[g.index(c)]
	return s.token, s.filled
}

// IsEmpty reports whether an in-bounds cell holds no token.
func (g *Grid) IsEmpty(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return !g.slots[g.index(c)].filled
}

// Set places a token at c. Out-of-bounds cells are ignored.
func (g *Grid) Set(c Cell, t Token) {
	if g.InBounds(c) {
		g.slots[g.index(c)] = slot{filled: true, token: t}
	}
}

// Clear empties c. Out-of-bounds cells are ignored.
func (g *Grid) Clear(c Cell) {
	if g.InBounds(c) {
		g.slots[g.index(c)] = slot{}
	}
}

// IsAdjacent reports whether a and b are both in bounds and orthogonal neighbours.
func (g *Grid) IsAdjacent(a, b Cell) bool {
	return g.InBounds(a) && g.InBounds(b) && a.Manhattan(b) == 1
}

// Swap exchanges the contents of a and b. No-op if either is out of bounds.
func (g *Grid) Swap(a, b Cell) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return
	}
	ia, ib := g.index(a), g.index(b)
	g.slots[ia], g.slots[ib] = g.slots[ib], g.slots[ia]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	slots := make([]slot, len(g.slots))
	copy(slots, g.slots)
	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		bounds: g.bounds,
		slots:  slots,
	}
}

// Equal returns true if both grids hold identical tokens (IDs included)
// in identical positions.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.slots {
		if g.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, s := range g.slots {
		if !s.filled {
			count++
		}
	}
	return count
}

// Bombs returns the cells holding color bombs in row-major order.
func (g *Grid) Bombs() []Cell {
	var cells []Cell
	for i, s := range g.slots {
		if s.filled && s.token.IsBomb() {
			cells = append(cells, g.cellAt(i))
		}
	}
	return cells
}

// ColorCounts returns how many tokens of each color are on the board.
func (g *Grid) ColorCounts(palette int) []int {
	counts := make([]int, palette)
	for _, s := range g.slots {
		if s.filled && int(s.token.Color) < palette {
			counts[s.token.Color]++
		}
	}
	return counts
}

// collect returns the marked cells in row-major order.
func (g *Grid) collect(marked []bool) []Cell {
	var cells []Cell
	for i, m := range marked {
		if m {
			cells = append(cells, g.cellAt(i))
		}
	}
	return cells
}
