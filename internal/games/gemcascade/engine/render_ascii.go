package engine

import (
	"strconv"
	"strings"
)

// String renders the grid one row per line, cells separated by spaces.
// Each cell is its color index, prefixed with 'b' for a color bomb;
// '.' is an empty cell. This is the same format layout fixtures use.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(CellText(g, At(r, c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellText returns the fixture notation for a single cell.
func CellText(g *Grid, c Cell) string {
	tok, ok := g.Get(c)
	if !ok {
		return "."
	}
	s := strconv.Itoa(int(tok.Color))
	if tok.IsBomb() {
		return "b" + s
	}
	return s
}
