package engine

import "time"

// PointsPerToken is the score for each cleared cell.
const PointsPerToken = 10

// cascade tracks the resolution in flight.
type cascade struct {
	pass     int  // passes run so far, including the one awaiting acknowledgement
	awaiting bool // a stage has been issued and not yet acknowledged
	issuedAt time.Duration
}

// StageResult is the outcome of acknowledging a cascade stage.
// Done is set once the board has settled and no stage is outstanding.
type StageResult struct {
	Events     []CascadeEvent
	ScoreDelta int
	Pass       int
	Done       bool
}

// beginCascade enters Resolving and runs the first pass on cleared.
func (e *Engine) beginCascade(cleared []Cell) (MoveResult, error) {
	e.session.clearSelection()
	e.session.State = StateResolving
	e.cascade = cascade{}

	events, delta, err := e.runPass(cleared)
	if err != nil {
		return MoveResult{Accepted: true}, err
	}
	return MoveResult{
		Accepted:   true,
		Events:     events,
		ScoreDelta: delta,
		Pending:    true,
	}, nil
}

// runPass clears the given cells, scores them, applies gravity and refills.
// The pass becomes the outstanding stage.
func (e *Engine) runPass(cleared []Cell) ([]CascadeEvent, int, error) {
	if e.cascade.pass >= e.cfg.MaxPasses {
		return nil, 0, e.fail(invariantf(CodePassGuard, "cascade did not settle within %d passes", e.cfg.MaxPasses))
	}
	e.cascade.pass++

	for _, c := range cleared {
		e.grid.Clear(c)
	}
	delta := len(cleared) * PointsPerToken
	e.session.Score += delta

	events := make([]CascadeEvent, 0, 1+2*len(cleared))
	events = append(events, DestroyEvent(cleared))
	events = append(events, ApplyGravity(e.grid)...)

	spawned, err := e.refill()
	if err != nil {
		return nil, 0, err
	}
	events = append(events, spawned...)

	e.cascade.awaiting = true
	e.cascade.issuedAt = e.now
	e.logger.Debug("cascade pass", "pass", e.cascade.pass, "cleared", len(cleared),
		"delta", delta, "score", e.session.Score)
	return events, delta, nil
}

// ApplyGravity moves every token straight down within its column so that all
// empty cells end up at the top. Relative order within a column is kept.
// Columns are processed left to right, each from the bottom up.
func ApplyGravity(g *Grid) []CascadeEvent {
	var events []CascadeEvent
	for c := 0; c < g.cols; c++ {
		gap := 0
		for r := g.rows - 1; r >= 0; r-- {
			from := At(r, c)
			tok, ok := g.Get(from)
			if !ok {
				gap++
				continue
			}
			if gap == 0 {
				continue
			}
			g.Clear(from)
			g.Set(At(r+gap, c), tok)
			events = append(events, FallEvent(c, r, r+gap, tok))
		}
	}
	return events
}

// refill spawns a token into every empty cell at the top of each column.
func (e *Engine) refill() ([]CascadeEvent, error) {
	var events []CascadeEvent
	for c := 0; c < e.grid.cols; c++ {
		for r := 0; r < e.grid.rows; r++ {
			cell := At(r, c)
			if !e.grid.IsEmpty(cell) {
				break
			}
			color, err := e.drawColor()
			if err != nil {
				return nil, err
			}
			tok := e.newToken(color, SpecialNone)
			e.grid.Set(cell, tok)
			events = append(events, SpawnEvent(cell, tok))
		}
	}
	if holes := e.grid.EmptyCount(); holes > 0 {
		return nil, e.fail(invariantf(CodeGridHole, "%d empty cells after refill", holes))
	}
	return events, nil
}

// AcknowledgeStageComplete tells the engine the presentation of the current
// stage has finished. It runs the next pass if the board still has runs,
// otherwise settles the board and returns to Idle. Acknowledging when no stage
// is outstanding does nothing and reports Done.
func (e *Engine) AcknowledgeStageComplete() (StageResult, error) {
	if e.session.State != StateResolving || !e.cascade.awaiting {
		e.reject("ack", "no stage outstanding")
		return StageResult{Done: true}, nil
	}
	return e.advance()
}

func (e *Engine) advance() (StageResult, error) {
	e.cascade.awaiting = false
	pass := e.cascade.pass

	if matched := Detect(e.grid); len(matched) > 0 {
		events, delta, err := e.runPass(matched)
		if err != nil {
			return StageResult{Pass: pass, Done: true}, err
		}
		return StageResult{Events: events, ScoreDelta: delta, Pass: e.cascade.pass}, nil
	}

	events, err := e.settle()
	return StageResult{Events: events, Pass: pass, Done: true}, err
}

// settle runs once the board is free of runs: applies the deadlock policy,
// returns to Idle and then applies the deferred countdown and queued pause.
func (e *Engine) settle() ([]CascadeEvent, error) {
	passes := e.cascade.pass
	e.cascade = cascade{}

	var events []CascadeEvent
	if e.cfg.ReshuffleOnDeadlock && len(e.grid.Bombs()) == 0 && !HasLegalMove(e.grid) {
		var err error
		if events, err = e.reshuffle(); err != nil {
			return nil, err
		}
	}

	e.session.State = StateIdle
	e.logger.Debug("cascade settled", "passes", passes, "score", e.session.Score)

	e.chargeCountdown()
	if e.pausePending && e.session.State == StateIdle {
		e.session.State = StatePaused
	}
	e.pausePending = false
	return events, nil
}

// forceAdvance resolves the remaining cascade synchronously.
func (e *Engine) forceAdvance() ([]CascadeEvent, int, error) {
	var events []CascadeEvent
	total := 0
	for e.session.State == StateResolving {
		st, err := e.advance()
		events = append(events, st.Events...)
		total += st.ScoreDelta
		if err != nil {
			return events, total, err
		}
		if st.Done {
			break
		}
	}
	return events, total, nil
}
