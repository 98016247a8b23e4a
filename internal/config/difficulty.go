package config

import (
	"fmt"
	"time"
)

// ParsePreset converts a preset name to a DifficultyPreset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// PaletteForPreset returns the palette size for a difficulty preset.
// Fewer colors make runs easier to form.
func PaletteForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 6
	case DifficultyHard:
		return 7
	default:
		return 6
	}
}

// RushDurationForPreset returns the Rush countdown for a difficulty preset.
func RushDurationForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 90 * time.Second
	case DifficultyHard:
		return 45 * time.Second
	default:
		return 60 * time.Second
	}
}

// ApplyGemcascadePreset modifies the config based on a difficulty preset.
// The fixed preset leaves the config as loaded.
func ApplyGemcascadePreset(cfg *GemcascadeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	cfg.Board.PaletteSize = PaletteForPreset(preset)
	cfg.Session.RushDuration = RushDurationForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.IdleHintAfter = 3 * time.Second
	case DifficultyHard:
		cfg.Session.IdleHintAfter = 10 * time.Second
	}
}
