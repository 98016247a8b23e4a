package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to locate their configuration and for deterministic simulation.
type RuntimeConfig struct {
	Seed       int64  // RNG seed for deterministic gameplay (0 = platform picks one)
	ConfigPath string // Custom config YAML; empty uses the standard search order
	Difficulty string // Difficulty preset name; empty keeps the config as loaded
	LayoutPath string // Optional fixed starting board
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
	Resolving bool // Whether a cascade is waiting on the presentation layer
}
