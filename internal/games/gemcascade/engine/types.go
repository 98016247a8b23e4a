// Package engine provides the core logic of the gemcascade tile-matching game:
// grid state, run detection, swap transactions, the color bomb, cascade
// resolution and session timing.
// This package is UI-agnostic and deterministic for a given token source.
package engine

import (
	"fmt"

	"github.com/vovakirdan/gemcascade/internal/core"
)

// Palette bounds.
const (
	MinPalette     = 3
	MaxPalette     = 10
	DefaultPalette = 6
)

// Color is an index into the session palette, in [0, PaletteSize).
type Color uint8

// Special marks tokens with an effect beyond matching.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialColorBomb
)

// String returns the string representation of a special kind.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialColorBomb:
		return "color_bomb"
	default:
		return "unknown"
	}
}

// Token is a single game piece. Tokens do not know their coordinates;
// the grid is the only owner of positions.
type Token struct {
	ID      uint64
	Color   Color
	Special Special
}

// IsBomb reports whether the token is a color bomb.
func (t Token) IsBomb() bool {
	return t.Special == SpecialColorBomb
}

// Cell is a grid coordinate. Row 0 is the top row.
type Cell struct {
	Row int
	Col int
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	return core.Abs(c.Row-other.Row) + core.Abs(c.Col-other.Col)
}

// Move is a candidate swap between two cells.
type Move struct {
	A Cell
	B Cell
}

// String returns "(r,c)<->(r,c)".
func (m Move) String() string {
	return m.A.String() + "<->" + m.B.String()
}
