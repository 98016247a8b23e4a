package config

import "fmt"

// ValidationError describes a configuration field that is out of range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks every field against the ranges the engine supports.
func (c GemcascadeConfig) Validate() error {
	switch {
	case c.Board.Rows < 3 || c.Board.Rows > 32:
		return invalid("board.rows", "must be in [3, 32], got %d", c.Board.Rows)
	case c.Board.Cols < 3 || c.Board.Cols > 32:
		return invalid("board.cols", "must be in [3, 32], got %d", c.Board.Cols)
	case c.Board.PaletteSize < 3 || c.Board.PaletteSize > 10:
		return invalid("board.palette_size", "must be in [3, 10], got %d", c.Board.PaletteSize)
	case c.Session.Mode != "rush" && c.Session.Mode != "endless":
		return invalid("session.mode", "must be rush or endless, got %q", c.Session.Mode)
	case c.Session.RushDuration <= 0:
		return invalid("session.rush_duration", "must be positive, got %s", c.Session.RushDuration)
	case c.Session.IdleHintAfter < 0:
		return invalid("session.idle_hint_after", "must not be negative, got %s", c.Session.IdleHintAfter)
	case c.Bomb.Trigger != "swap_adjacent" && c.Bomb.Trigger != "direct_tap" && c.Bomb.Trigger != "both":
		return invalid("bomb.trigger", "must be swap_adjacent, direct_tap or both, got %q", c.Bomb.Trigger)
	case c.Cascade.MaxPasses < 1:
		return invalid("cascade.max_passes", "must be at least 1, got %d", c.Cascade.MaxPasses)
	case c.Cascade.AckTimeout < 0:
		return invalid("cascade.ack_timeout", "must not be negative, got %s", c.Cascade.AckTimeout)
	}
	return nil
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
