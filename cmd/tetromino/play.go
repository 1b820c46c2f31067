package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/platform/tui"
	"github.com/vovakirdan/tui-tetromino/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/Right   - Move
  Up/Space     - Rotate clockwise
  Z/Alt+Up     - Rotate counter-clockwise
  Down         - Soft drop while held
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit
  Game over: Up/Space starts a new game

Difficulty options:
  easy   - Slower gravity curve
  normal - 800ms at level 0 down to 200ms at level 9
  hard   - Faster gravity curve
  fixed  - Gravity never speeds up

The terminal belongs to the game while it runs; use --log-file to
keep logs.

Examples:
  tetromino play
  tetromino play --difficulty easy
  tetromino play --seed 42 --log-level debug --log-file /tmp/tetromino.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name stored with scores (default: $USER)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		if mkErr := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); mkErr != nil {
			return fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "tetromino")
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	if fw, fh := tui.FrameSize(cfg.Board.Width, cfg.Board.Height); rt.ScreenW < fw || rt.ScreenH < fh {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n",
			rt.ScreenW, rt.ScreenH, fw, fh)
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	logger.Info("starting game", "player", player, "seed", rt.Seed, "preset", cfg.Difficulty.Preset)
	if err := tui.Run(cfg, rt, tui.SessionOptions{
		Store:  store,
		Player: player,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
