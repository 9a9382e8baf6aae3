// snake is a terminal snake game on a wrapped grid.
//
// Usage:
//
//	snake                    - Play in this terminal (same as "snake play")
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - RNG seed for reproducible collectible placement
//	--tick <ms>         - Tick interval in milliseconds
//	--capacity <n>      - Collectibles kept on the board
//	--log-file <path>   - Log destination
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTick     int
	flagCapacity int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrapped-grid snake game for your terminal",
	Long: `Snake is a terminal snake game. The board wraps on every edge,
collectibles make the snake grow, and the game runs until you quit.

Controls:
  W/A/S/D    - Turn up/left/down/right
  Q/Ctrl+C   - Quit

Examples:
  snake
  snake play --backend ansi
  snake play --seed 42 --tick 120
  snake serve --ssh :2222
  snake config`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagCapacity, "capacity", 0, "Collectibles on the board (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	addBackendFlag(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("tick") {
		cfg.Game.TickMs = flagTick
	}
	if flags.Changed("capacity") {
		cfg.Game.CollectibleCapacity = flagCapacity
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("backend") {
		cfg.Display.Backend = flagBackend
	}
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
