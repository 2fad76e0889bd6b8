package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/immortal00111/4096base/internal/config"
	"github.com/immortal00111/4096base/internal/core"
	"github.com/immortal00111/4096base/internal/game"
	"github.com/immortal00111/4096base/internal/host"
	"github.com/immortal00111/4096base/internal/platform/tui"
	"github.com/immortal00111/4096base/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start a puzzle session in the current terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Enter            - Keep playing after reaching the target
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  4096base play
  4096base play --seed 42
  4096base play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game rules (custom path > user config > embedded default)
	gameCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	// Create runtime config, sized to the terminal when its size is known
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	g := game.New(gameCfg.Options())

	// Open score storage
	var store storage.ScoreStore
	s, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		store = s
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "4096base"})

	// Run the game
	runErr := tui.Run(g, store, host.Detect(), cfg, logger)

	// Close store before potential exit
	if s != nil {
		s.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
