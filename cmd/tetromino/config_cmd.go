package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, after the search order
(--config, ~/.tetromino/configs/tetromino.yaml, ./configs/tetromino.yaml,
embedded default) and --difficulty are applied.

Examples:
  tetromino config
  tetromino config --difficulty hard
  tetromino config init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.tetromino/configs",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, ".tetromino", "configs", config.ConfigFile)

	if _, statErr := os.Stat(path); statErr == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
