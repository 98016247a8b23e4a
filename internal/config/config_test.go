package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees what the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GemcascadeConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultGemcascadeConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadGemcascade("")
	require.NoError(t, err)
	assert.Equal(t, DefaultGemcascadeConfig(), cfg)
	assert.Equal(t, "embedded", Source(""))
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "gemcascade.yaml"), "board:\n  rows: 8\n")
	cfg, err := LoadGemcascade("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Rows)
	assert.Equal(t, filepath.Join("configs", "gemcascade.yaml"), Source(""))

	userPath := filepath.Join(home, AppDir, "configs", "gemcascade.yaml")
	writeFile(t, userPath, "board:\n  rows: 7\n")
	cfg, err = LoadGemcascade("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.Rows, "user config wins over ./configs")
	assert.Equal(t, userPath, Source(""))

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "board:\n  rows: 5\n")
	cfg, err = LoadGemcascade(custom)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Rows, "custom path wins over everything")
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "session:\n  mode: endless\n  rush_duration: 2m\ncascade:\n  ack_timeout: 0s\n")

	cfg, err := LoadGemcascade(path)
	require.NoError(t, err)

	assert.Equal(t, "endless", cfg.Session.Mode)
	assert.Equal(t, 2*time.Minute, cfg.Session.RushDuration)
	assert.Zero(t, cfg.Cascade.AckTimeout)
	assert.Equal(t, 10, cfg.Board.Rows)
	assert.Equal(t, "swap_adjacent", cfg.Bomb.Trigger)
	assert.True(t, cfg.Cascade.ReshuffleOnDeadlock)
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := LoadGemcascade(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [\n")
	_, err = LoadGemcascade(bad)
	assert.Error(t, err)

	invalidPath := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalidPath, "board:\n  palette_size: 12\n")
	_, err = LoadGemcascade(invalidPath)
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "board.palette_size", verr.Field)
}

func TestInvalidUserConfigIsSkipped(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, AppDir, "configs", "gemcascade.yaml"), "board:\n  rows: 1\n")

	cfg, err := LoadGemcascade("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.Rows)
	assert.Equal(t, "embedded", Source(""))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*GemcascadeConfig)
	}{
		{"board.rows", func(c *GemcascadeConfig) { c.Board.Rows = 2 }},
		{"board.cols", func(c *GemcascadeConfig) { c.Board.Cols = 40 }},
		{"board.palette_size", func(c *GemcascadeConfig) { c.Board.PaletteSize = 2 }},
		{"session.mode", func(c *GemcascadeConfig) { c.Session.Mode = "zen" }},
		{"session.rush_duration", func(c *GemcascadeConfig) { c.Session.RushDuration = 0 }},
		{"session.idle_hint_after", func(c *GemcascadeConfig) { c.Session.IdleHintAfter = -time.Second }},
		{"bomb.trigger", func(c *GemcascadeConfig) { c.Bomb.Trigger = "shake" }},
		{"cascade.max_passes", func(c *GemcascadeConfig) { c.Cascade.MaxPasses = 0 }},
		{"cascade.ack_timeout", func(c *GemcascadeConfig) { c.Cascade.AckTimeout = -time.Second }},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			cfg := DefaultGemcascadeConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			assert.Contains(t, err.Error(), "["+tc.field+"]")
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		palette int
		rush    time.Duration
		hint    time.Duration
	}{
		{DifficultyEasy, 5, 90 * time.Second, 3 * time.Second},
		{DifficultyNormal, 6, 60 * time.Second, 5 * time.Second},
		{DifficultyHard, 7, 45 * time.Second, 10 * time.Second},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGemcascadeConfig()
			ApplyGemcascadePreset(&cfg, tc.preset)
			assert.Equal(t, tc.palette, cfg.Board.PaletteSize)
			assert.Equal(t, tc.rush, cfg.Session.RushDuration)
			assert.Equal(t, tc.hint, cfg.Session.IdleHintAfter)
			assert.NoError(t, cfg.Validate())
		})
	}

	t.Run("fixed keeps config", func(t *testing.T) {
		cfg := DefaultGemcascadeConfig()
		cfg.Board.PaletteSize = 9
		ApplyGemcascadePreset(&cfg, DifficultyFixed)
		assert.Equal(t, 9, cfg.Board.PaletteSize)
	})
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePreset("insane")
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGemcascadeConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "rush_duration: 1m0s")

	var cfg GemcascadeConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultGemcascadeConfig(), cfg)
}
