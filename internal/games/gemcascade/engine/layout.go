package engine

import (
	"fmt"
	"strconv"
)

// LayoutCell is one position of a fixed board.
type LayoutCell struct {
	Empty bool // filled from the token source at session start
	Color Color
	Bomb  bool
}

// String returns the cell in fixture notation.
func (lc LayoutCell) String() string {
	switch {
	case lc.Empty:
		return "."
	case lc.Bomb:
		return "b" + strconv.Itoa(int(lc.Color))
	default:
		return strconv.Itoa(int(lc.Color))
	}
}

// Layout is a fixed starting board, indexed [row][col]. It marks at most
// one bomb.
//
// Layouts may contain runs. Because a swap commits whenever the board holds
// any run after the exchange, the first adjacent swap on such a board commits
// even if it forms no run itself, and the existing runs clear in its cascade.
type Layout [][]LayoutCell

// Rows returns the number of rows.
func (l Layout) Rows() int { return len(l) }

// Cols returns the width of the first row.
func (l Layout) Cols() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// check verifies the layout matches the configured grid and palette.
func (l Layout) check(cfg Config) error {
	if len(l) != cfg.Rows {
		return fmt.Errorf("layout has %d rows, config expects %d", len(l), cfg.Rows)
	}
	bombs := 0
	for r, row := range l {
		if len(row) != cfg.Cols {
			return fmt.Errorf("layout row %d has %d cells, config expects %d", r, len(row), cfg.Cols)
		}
		for c, lc := range row {
			if !lc.Empty && int(lc.Color) >= cfg.PaletteSize {
				return fmt.Errorf("layout cell %s color %d outside palette of %d", At(r, c), lc.Color, cfg.PaletteSize)
			}
			if !lc.Empty && lc.Bomb {
				bombs++
			}
		}
	}
	if bombs > 1 {
		return fmt.Errorf("layout marks %d bombs, at most 1 allowed", bombs)
	}
	return nil
}
