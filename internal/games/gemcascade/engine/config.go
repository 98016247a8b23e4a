package engine

import (
	"fmt"
	"time"
)

// Mode selects whether a session is timed.
type Mode uint8

const (
	ModeRush    Mode = iota // timed; ends when the countdown reaches zero
	ModeEndless             // untimed; ends only on Reset or invariant failure
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeRush:
		return "rush"
	case ModeEndless:
		return "endless"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rush":
		return ModeRush, nil
	case "endless":
		return ModeEndless, nil
	default:
		return 0, fmt.Errorf("engine: unknown mode %q", s)
	}
}

// BombTrigger selects how a color bomb is detonated.
type BombTrigger uint8

const (
	TriggerSwapAdjacent BombTrigger = iota // swap the bomb with a neighbour
	TriggerDirectTap                       // select the bomb alone
	TriggerBoth
)

// String returns the string representation of a trigger.
func (t BombTrigger) String() string {
	switch t {
	case TriggerSwapAdjacent:
		return "swap_adjacent"
	case TriggerDirectTap:
		return "direct_tap"
	case TriggerBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseBombTrigger converts a trigger name to a BombTrigger.
func ParseBombTrigger(s string) (BombTrigger, error) {
	switch s {
	case "swap_adjacent":
		return TriggerSwapAdjacent, nil
	case "direct_tap":
		return TriggerDirectTap, nil
	case "both":
		return TriggerBoth, nil
	default:
		return 0, fmt.Errorf("engine: unknown bomb trigger %q", s)
	}
}

// OnSwap reports whether swapping a bomb detonates it.
func (t BombTrigger) OnSwap() bool {
	return t == TriggerSwapAdjacent || t == TriggerBoth
}

// OnTap reports whether selecting a bomb alone detonates it.
func (t BombTrigger) OnTap() bool {
	return t == TriggerDirectTap || t == TriggerBoth
}

// RushBombs is the number of color bombs placed on a generated board at
// every Rush session start.
const RushBombs = 1

// Config holds the engine parameters for one session.
type Config struct {
	Rows        int
	Cols        int
	PaletteSize int
	Mode        Mode
	BombTrigger BombTrigger

	RushDuration  time.Duration
	IdleHintAfter time.Duration

	MaxPasses           int
	AckTimeout          time.Duration // 0 disables the safety timeout
	ReshuffleOnDeadlock bool
}

// DefaultConfig returns the standard 10×10, six-color Rush setup.
func DefaultConfig() Config {
	return Config{
		Rows:                10,
		Cols:                10,
		PaletteSize:         DefaultPalette,
		Mode:                ModeRush,
		BombTrigger:         TriggerSwapAdjacent,
		RushDuration:        60 * time.Second,
		IdleHintAfter:       5 * time.Second,
		MaxPasses:           64,
		AckTimeout:          10 * time.Second,
		ReshuffleOnDeadlock: true,
	}
}

// Validate checks the structural limits the engine relies on.
func (c Config) Validate() error {
	switch {
	case c.Rows < MinRun || c.Cols < MinRun:
		return fmt.Errorf("grid %dx%d smaller than %dx%d", c.Rows, c.Cols, MinRun, MinRun)
	case c.PaletteSize < MinPalette || c.PaletteSize > MaxPalette:
		return fmt.Errorf("palette size %d outside [%d, %d]", c.PaletteSize, MinPalette, MaxPalette)
	case c.Mode > ModeEndless:
		return fmt.Errorf("unknown mode %d", c.Mode)
	case c.BombTrigger > TriggerBoth:
		return fmt.Errorf("unknown bomb trigger %d", c.BombTrigger)
	case c.Mode == ModeRush && c.RushDuration <= 0:
		return fmt.Errorf("rush duration must be positive, got %s", c.RushDuration)
	case c.MaxPasses < 1:
		return fmt.Errorf("max passes must be at least 1, got %d", c.MaxPasses)
	case c.AckTimeout < 0 || c.IdleHintAfter < 0:
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}
