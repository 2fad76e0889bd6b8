package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGame loads the session configuration.
// Search order: customPath -> ~/.4096base/configs/game.yaml ->
// ./configs/game.yaml -> embedded default.
func LoadGame(customPath string) (GameConfig, error) {
	// Try custom path first; an explicit path that fails is an error
	if customPath != "" {
		cfg, err := readConfig(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath("game.yaml"); userPath != "" {
		if cfg, err := readConfig(userPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readConfig(filepath.Join("configs", "game.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readConfig parses one YAML config file. Unmarshalling starts from the
// defaults so an omitted key keeps its default value while an explicit
// zero (e.g. spawn_four: 0 for a twos-only game) stays zero.
func readConfig(path string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".4096base", "configs", filename)
}
