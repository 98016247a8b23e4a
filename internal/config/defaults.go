package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gemcascade.yaml
var defaultGemcascadeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGemcascadeYAML
}

// DefaultGemcascadeConfig returns the default gemcascade configuration.
func DefaultGemcascadeConfig() GemcascadeConfig {
	return GemcascadeConfig{
		Board: BoardConfig{
			Rows:        10,
			Cols:        10,
			PaletteSize: 6,
		},
		Session: SessionConfig{
			Mode:          "rush",
			RushDuration:  60 * time.Second,
			IdleHintAfter: 5 * time.Second,
		},
		Bomb: BombConfig{
			Trigger: "swap_adjacent",
		},
		Cascade: CascadeConfig{
			MaxPasses:           64,
			AckTimeout:          10 * time.Second,
			ReshuffleOnDeadlock: true,
		},
	}
}
