// Package config provides YAML-based game configuration loading and
// difficulty presets for gemcascade.
package config

import "time"

// GemcascadeConfig contains all configuration for a gemcascade session.
type GemcascadeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Session SessionConfig `yaml:"session"`
	Bomb    BombConfig    `yaml:"bomb"`
	Cascade CascadeConfig `yaml:"cascade"`
}

// BoardConfig defines the grid and palette.
type BoardConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	PaletteSize int `yaml:"palette_size"`
}

// SessionConfig defines the session mode and timing.
type SessionConfig struct {
	Mode          string        `yaml:"mode"`          // "rush" or "endless"
	RushDuration  time.Duration `yaml:"rush_duration"` // e.g. "60s"
	IdleHintAfter time.Duration `yaml:"idle_hint_after"`
}

// BombConfig defines how color bombs detonate.
type BombConfig struct {
	Trigger string `yaml:"trigger"` // "swap_adjacent", "direct_tap" or "both"
}

// CascadeConfig defines cascade resolution limits.
type CascadeConfig struct {
	MaxPasses           int           `yaml:"max_passes"`
	AckTimeout          time.Duration `yaml:"ack_timeout"` // 0 disables
	ReshuffleOnDeadlock bool          `yaml:"reshuffle_on_deadlock"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// IsFixedPreset returns true if the preset keeps the config as loaded.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
