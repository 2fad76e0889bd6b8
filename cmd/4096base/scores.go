package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/immortal00111/4096base/internal/platform/tui"
	"github.com/immortal00111/4096base/internal/storage"
)

const scoresGameID = "4096"

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  4096base scores
  4096base scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, scoresGameID, "4096", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(scoresGameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - 4096")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play '4096base play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(scoresGameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
