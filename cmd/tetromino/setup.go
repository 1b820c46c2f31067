package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetromino/internal/config"
)

// loadConfig loads the game config and applies --difficulty.
func loadConfig() (config.TetrominoConfig, string, error) {
	cfg, source, err := config.LoadTetrominoWithSource(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, source, err
		}
		config.ApplyTetrominoPreset(&cfg, preset)
	}
	return cfg, source, nil
}

// newLogger builds a logger writing to w at --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
