package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetromino/internal/platform/tui"
	"github.com/vovakirdan/tui-tetromino/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagByUser string
	flagTable  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best games",
	Long: `Display the best games by cleared lines, plus overall statistics.

Examples:
  tetromino scores
  tetromino scores --limit 20
  tetromino scores --player ann
  tetromino scores --clear
  tetromino scores -i --player ann`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().StringVar(&flagByUser, "player", "", "Show the recent games of one player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
	scoresCmd.Flags().BoolVarP(&flagTable, "interactive", "i", false, "Browse scores in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	if flagTable {
		width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, flagByUser, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	}

	var scores []storage.ScoreEntry
	title := "Best Games"
	if flagByUser != "" {
		title = fmt.Sprintf("Recent Games - %s", flagByUser)
		scores, err = store.PlayerScores(flagByUser, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetromino play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "Rank", "Lines", "Level", "Preset", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "------", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-5d  %-8s  %-12s  %s\n",
			i+1, e.Lines, e.Level, e.Preset, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best Lines: %d   Games: %d   Average: %.1f\n", stats.BestLines, stats.GamesCount, stats.AvgLines)
	return nil
}
