// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Path to a config YAML (default: search ~/.snake, ./configs)
//	--speed <rate>      - Ticks per second, overrides the config (0 = use config)
//	--seed <value>      - RNG seed for reproducible gameplay (0 = random based on time)
//	--log-file <path>   - Write logs to this file (default: discard)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSpeed    int
	flagSeed     int64
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
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game played on a wrapping grid.

Eat food to grow. Running into your own body shrinks the snake back to a
single cell in the middle of the board, and play goes on.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --speed 15
  snake play --seed 42 --log-file snake.log --log-level debug
  snake config --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Ticks per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
