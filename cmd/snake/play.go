package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  Q/Esc/Ctrl+C     - Quit

The snake cannot reverse onto itself: pressing the opposite direction
is ignored.

Examples:
  snake play
  snake play --speed 20
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// loadConfig loads the config from the usual search path and applies
// command-line overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	if flagSpeed != 0 {
		cfg.Speed = flagSpeed
		if err := cfg.Validate(); err != nil {
			return config.Config{}, "", fmt.Errorf("--speed: %w", err)
		}
	}
	return cfg, source, nil
}

// runTUI starts the terminal UI. Tests replace it to avoid taking over the terminal.
var runTUI = tui.Run

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play loads the config and runs one session. The log file is closed on
// every return path.
func play() (err error) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close log file: %w", closeErr)
		}
	}()

	cfg, source, err := loadConfig()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}
	logger.Info("config loaded", "source", source, "speed", cfg.Speed)

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Speed
	rc.Seed = flagSeed

	// Get terminal size, keeping the defaults when stdout is not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game := snake.New(cfg, logger.WithPrefix("snake/game"))
	if err := runTUI(game, rc, logger.WithPrefix("snake/tui")); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
