package engine

import "time"

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Mode          string
	State         string
	Score         int
	TimeRemaining time.Duration
	Now           time.Duration
	Pass          int  // passes run by the cascade in flight
	Awaiting      bool // a stage is waiting for acknowledgement
	Rows          int
	Cols          int
	Palette       int
	Board         [][]int // color per cell, -1 for empty
	Bombs         []Cell
	Selection     *Cell
	NextID        uint64
}

// Snapshot returns the current session snapshot.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:          e.session.Mode.String(),
		State:         e.session.State.String(),
		Score:         e.session.Score,
		TimeRemaining: e.session.TimeRemaining,
		Now:           e.now,
		Pass:          e.cascade.pass,
		Awaiting:      e.cascade.awaiting,
		Rows:          e.grid.rows,
		Cols:          e.grid.cols,
		Palette:       e.cfg.PaletteSize,
		Board:         make([][]int, e.grid.rows),
		Bombs:         e.grid.Bombs(),
		NextID:        e.nextID,
	}
	for r := range snap.Board {
		row := make([]int, e.grid.cols)
		for c := range row {
			row[c] = -1
			if tok, ok := e.grid.Get(At(r, c)); ok {
				row[c] = int(tok.Color)
			}
		}
		snap.Board[r] = row
	}
	if e.session.HasSelection {
		sel := e.session.Selection
		snap.Selection = &sel
	}
	return snap
}
