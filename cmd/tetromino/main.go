// tetromino is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetromino play           - Play in this terminal
//	tetromino serve          - Start SSH server for remote play
//	tetromino scores         - Show the best games
//	tetromino config         - Print or install the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.tetromino/scores.db)
//	--config <path>      - Use a specific config file
//	--difficulty <name>  - Override the speed curve: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetromino",
	Short: "Tetromino - a falling-block puzzle in your terminal",
	Long: `Tetromino is a terminal falling-block puzzle. Complete rows to clear
them; every 10 lines the pieces fall faster.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best games
  config   - Show or install the configuration

Examples:
  tetromino play
  tetromino play --difficulty hard
  tetromino serve --ssh :2222
  tetromino scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
