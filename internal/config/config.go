// Package config provides YAML-based configuration loading and difficulty
// presets for the tetromino engine and its hosts.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// TetrominoConfig contains all configuration for a game.
type TetrominoConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the well dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the gravity curve in milliseconds.
type SpeedConfig struct {
	Level0MS   int  `yaml:"level0_ms"`    // Interval at level 0
	Level9MS   int  `yaml:"level9_ms"`    // Interval at level 9
	SoftDropMS int  `yaml:"soft_drop_ms"` // Interval while soft dropping
	Fixed      bool `yaml:"fixed"`        // Ignore level changes
}

// InputConfig tunes the terminal input adapter.
type InputConfig struct {
	// SoftDropReleaseMS ends a soft drop when no repeat of the down key
	// arrives within this window. Terminals report no key-up events.
	SoftDropReleaseMS int `yaml:"soft_drop_release_ms"`
}

// DifficultyConfig records the preset the speed curve was derived from.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Engine converts the speed settings to the engine's curve.
func (s SpeedConfig) Engine() tetromino.SpeedConfig {
	return tetromino.SpeedConfig{
		Level0:   time.Duration(s.Level0MS) * time.Millisecond,
		Level9:   time.Duration(s.Level9MS) * time.Millisecond,
		SoftDrop: time.Duration(s.SoftDropMS) * time.Millisecond,
		Fixed:    s.Fixed,
	}
}

// SoftDropRelease returns the soft-drop release window.
func (i InputConfig) SoftDropRelease() time.Duration {
	return time.Duration(i.SoftDropReleaseMS) * time.Millisecond
}

// EngineOptions returns engine options for this config. Hosts fill in
// the seed, scheduler, logger and observers.
func (c TetrominoConfig) EngineOptions() tetromino.Options {
	return tetromino.Options{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Speed:  c.Speed.Engine(),
	}
}

// Validate checks that the config describes a playable game.
func (c TetrominoConfig) Validate() error {
	if c.Board.Width < tetromino.GridSize || c.Board.Height < tetromino.GridSize {
		return fmt.Errorf("config: board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, tetromino.GridSize, tetromino.GridSize)
	}
	if c.Speed.Level0MS <= 0 || c.Speed.Level9MS <= 0 || c.Speed.SoftDropMS <= 0 {
		return fmt.Errorf("config: speed intervals must be positive (level0=%d level9=%d soft_drop=%d)",
			c.Speed.Level0MS, c.Speed.Level9MS, c.Speed.SoftDropMS)
	}
	if c.Speed.Level9MS > c.Speed.Level0MS {
		return fmt.Errorf("config: level9_ms (%d) is slower than level0_ms (%d)",
			c.Speed.Level9MS, c.Speed.Level0MS)
	}
	if c.Input.SoftDropReleaseMS <= 0 {
		return fmt.Errorf("config: soft_drop_release_ms must be positive, got %d", c.Input.SoftDropReleaseMS)
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return err
		}
	}
	return nil
}
