package engine

import (
	"fmt"
	"time"
)

// State is the session state machine position.
type State uint8

const (
	StateIdle         State = iota // accepting moves
	StateTileSelected              // one cell selected, waiting for the second
	StateResolving                 // cascade in flight, waiting for acknowledgements
	StatePaused
	StateEnded
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTileSelected:
		return "tile_selected"
	case StateResolving:
		return "resolving"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session is the per-game record. Score never decreases within a session.
type Session struct {
	Mode          Mode
	State         State
	Score         int
	TimeRemaining time.Duration // Rush only; zero in Endless
	Selection     Cell
	HasSelection  bool
}

func (s *Session) selectCell(c Cell) {
	s.Selection = c
	s.HasSelection = true
	s.State = StateTileSelected
}

func (s *Session) clearSelection() {
	s.Selection = Cell{}
	s.HasSelection = false
}

// TickResult reports the effect of a clock tick.
type TickResult struct {
	Expired    bool          // the Rush countdown has reached zero
	Remaining  time.Duration // time left after this tick
	Forced     bool          // the ack timeout force-completed a cascade
	Events     []CascadeEvent
	ScoreDelta int
}

// Start begins a new session in the given mode, discarding any current one.
// The session clock restarts at zero.
func (e *Engine) Start(mode Mode) error {
	if mode > ModeEndless {
		return fmt.Errorf("engine: unknown mode %d", mode)
	}
	e.cfg.Mode = mode
	e.session = Session{Mode: mode, State: StateIdle}
	if mode == ModeRush {
		e.session.TimeRemaining = e.cfg.RushDuration
	}
	e.cascade = cascade{}
	e.pausePending = false
	e.expired = false
	e.now = 0
	e.countedAt = 0

	if err := e.buildBoard(); err != nil {
		return err
	}
	e.logger.Debug("session started", "mode", mode, "rows", e.cfg.Rows, "cols", e.cfg.Cols,
		"palette", e.cfg.PaletteSize, "bombs", len(e.grid.Bombs()))
	return nil
}

// Reset restarts the session in its current mode.
func (e *Engine) Reset() error {
	return e.Start(e.session.Mode)
}

// Pause suspends the session. During a cascade the pause is queued and takes
// effect once the board settles. Returns false if there is nothing to pause.
func (e *Engine) Pause() bool {
	switch e.session.State {
	case StateIdle, StateTileSelected:
		e.chargeCountdown()
		if e.session.State == StateEnded {
			return false
		}
		e.session.clearSelection()
		e.session.State = StatePaused
		return true
	case StateResolving:
		e.pausePending = true
		return true
	default:
		return false
	}
}

// Resume continues a paused session, or cancels a queued pause.
// Time spent paused is not charged to the countdown.
func (e *Engine) Resume() bool {
	switch {
	case e.session.State == StatePaused:
		e.session.State = StateIdle
		e.countedAt = e.now
		return true
	case e.session.State == StateResolving && e.pausePending:
		e.pausePending = false
		return true
	default:
		return false
	}
}

// Tick advances the session clock to now, measured from Start.
// While a cascade is in flight the countdown is deferred until the board
// settles; a stage left unacknowledged for AckTimeout is force-completed.
// A stage's wait is counted from the latest tick before it was issued, so it
// may be forced up to one tick interval early.
// Times earlier than the latest tick are ignored.
func (e *Engine) Tick(now time.Duration) (TickResult, error) {
	if now > e.now {
		e.now = now
	}

	var res TickResult
	switch e.session.State {
	case StateIdle, StateTileSelected:
		e.chargeCountdown()
	case StatePaused:
		e.countedAt = e.now
	case StateResolving:
		if e.cascade.awaiting && e.cfg.AckTimeout > 0 && e.now-e.cascade.issuedAt >= e.cfg.AckTimeout {
			e.logger.Warn("stage not acknowledged, forcing cascade",
				"pass", e.cascade.pass, "waited", e.now-e.cascade.issuedAt)
			events, delta, err := e.forceAdvance()
			res.Forced = true
			res.Events = events
			res.ScoreDelta = delta
			if err != nil {
				return res, err
			}
		}
	}

	res.Remaining = e.session.TimeRemaining
	res.Expired = e.expired
	return res, nil
}

// chargeCountdown deducts time elapsed since the last charge from a Rush
// session and ends it at zero.
func (e *Engine) chargeCountdown() {
	elapsed := e.now - e.countedAt
	e.countedAt = e.now
	if e.session.Mode != ModeRush || elapsed <= 0 {
		return
	}
	e.session.TimeRemaining -= elapsed
	if e.session.TimeRemaining <= 0 {
		e.session.TimeRemaining = 0
		e.session.State = StateEnded
		e.session.clearSelection()
		e.expired = true
		e.logger.Debug("session expired", "score", e.session.Score)
	}
}

// RecordIdle reports a hint once the player has been idle for at least the
// configured threshold. It does not change any state.
func (e *Engine) RecordIdle(elapsed time.Duration) (Hint, bool) {
	if s := e.session.State; s != StateIdle && s != StateTileSelected {
		return Hint{}, false
	}
	if elapsed < e.cfg.IdleHintAfter {
		return Hint{}, false
	}
	return e.hint(), true
}
