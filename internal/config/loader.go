package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".gemcascade"

// LoadGemcascade loads gemcascade configuration.
// Search order: customPath -> ~/.gemcascade/configs/gemcascade.yaml ->
// ./configs/gemcascade.yaml -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so partial files are fine.
func LoadGemcascade(customPath string) (GemcascadeConfig, error) {
	cfg, _, err := resolve(customPath)
	return cfg, err
}

// Source reports where LoadGemcascade finds its configuration:
// a file path, "embedded" or "builtin".
func Source(customPath string) string {
	_, src, _ := resolve(customPath)
	return src
}

func resolve(customPath string) (GemcascadeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		return cfg, customPath, err
	}

	// Try user config directory
	if userCfgPath := userConfigPath("gemcascade.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "gemcascade.yaml")
	if cfg, err := loadFile(local); err == nil {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg := DefaultGemcascadeConfig()
	if err := yaml.Unmarshal(defaultGemcascadeYAML, &cfg); err != nil {
		return DefaultGemcascadeConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func loadFile(path string) (GemcascadeConfig, error) {
	cfg := DefaultGemcascadeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg GemcascadeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
