package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the config file name looked up in each search location.
const ConfigFile = "tetromino.yaml"

// LoadTetromino loads the game configuration.
// Search order: customPath -> ~/.tetromino/configs/tetromino.yaml ->
// ./configs/tetromino.yaml -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadTetromino(customPath string) (TetrominoConfig, error) {
	cfg, _, err := LoadTetrominoWithSource(customPath)
	return cfg, err
}

// LoadTetrominoWithSource is LoadTetromino that also reports where the
// config came from: a file path, "embedded" or "builtin".
func LoadTetrominoWithSource(customPath string) (TetrominoConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrominoConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return TetrominoConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or broken files fall through to the next location.
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(defaultTetrominoYAML); err == nil {
		return cfg, "embedded", nil
	}
	return DefaultTetrominoConfig(), "builtin", nil
}

// decode parses YAML on top of the hardcoded defaults.
func decode(data []byte) (TetrominoConfig, error) {
	cfg := DefaultTetrominoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg TetrominoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetromino", "configs", filename)
}
