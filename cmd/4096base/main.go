// 4096base is a terminal sliding-tile merge puzzle.
//
// Usage:
//
//	4096base play            - Play in the current terminal
//	4096base serve           - Start SSH server for remote play
//	4096base scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.4096base/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "4096base",
	Short: "4096 - A sliding-tile merge puzzle for your terminal",
	Long: `4096 is a terminal puzzle: slide tiles on a 4x4 board, merge equal
pairs, and build up to the target tile.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  4096base play
  4096base play --seed 42
  4096base serve --ssh :2222
  4096base scores --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.4096base/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
