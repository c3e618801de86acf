package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dusk-runner/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Up/W/Space   - Jump
  Left/A       - Run left
  Right/D      - Run right
  Mouse drag   - Swipe (up jumps, down restarts after game over)
  Enter        - Restart (after game over)
  Esc/B        - Back (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, base speeds

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with scores (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reloads, stopWatch, err := startWatch(logger)
	if err != nil {
		return err
	}
	defer stopWatch()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := flagPlayer
	if player == "" {
		player = localPlayer()
	}

	opts := tui.Options{
		Runner:  cfg,
		Runtime: terminalRuntime(),
		Store:   store,
		Player:  player,
		Reloads: reloads,
		Logger:  logger,
	}

	logger.Info("run started", "player", player, "difficulty", flagDifficulty)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
