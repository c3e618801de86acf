package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dusk-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with play and high scores",
	Long: `Start the runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with scores (default: $USER)")
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	if err := tui.RunSession(opts); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
