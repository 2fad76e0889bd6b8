package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/immortal00111/4096base/internal/config"
	"github.com/immortal00111/4096base/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play over the network.

Each SSH connection gets its own board with an independent seed.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.4096base/host_key

Examples:
  4096base serve                           # Listen on :23234 with auto-generated key
  4096base serve --ssh :2222               # Listen on port 2222
  4096base serve --host-key ./my_host_key  # Use specific host key
  4096base serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadGame(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameOptions = gameCfg.Options()
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting 4096 SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
