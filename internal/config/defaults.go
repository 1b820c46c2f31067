package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

//go:embed defaults/tetromino.yaml
var defaultTetrominoYAML []byte

// DefaultTetrominoConfig returns the hardcoded default configuration.
func DefaultTetrominoConfig() TetrominoConfig {
	return TetrominoConfig{
		Board: BoardConfig{
			Width:  tetromino.DefaultWidth,
			Height: tetromino.DefaultHeight,
		},
		Speed: SpeedConfig{
			Level0MS:   800,
			Level9MS:   200,
			SoftDropMS: 50,
		},
		Input: InputConfig{
			SoftDropReleaseMS: 150,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrominoYAML
}
