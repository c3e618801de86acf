package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/platform/gui"
)

var (
	flagAssets     string
	flagFullscreen bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window.

Sprite sheets are read from --assets (background.png, player.png, enemy.png).
Without it, placeholder sheets are painted.

Controls:
  Arrow keys   - Jump, run left, run right
  Touch/mouse  - Swipe (up jumps, down restarts after game over)
  Enter        - Restart (after game over)
  F            - Toggle fullscreen
  Esc          - Quit

Examples:
  runner window
  runner window --assets ./assets --fullscreen`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite sheet PNGs")
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	windowCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with scores (default: $USER)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
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

	player := flagPlayer
	if player == "" {
		player = localPlayer()
	}

	opts := gui.Options{
		Runner: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  core.WorldWidth,
			ScreenH:  core.WorldHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		AssetDir:   flagAssets,
		Player:     player,
		Reloads:    reloads,
		Fullscreen: gui.WindowFullscreen{},
		Logger:     logger,
	}
	// Only a non-nil store goes into the interface
	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Scores = store
	}

	if flagFullscreen {
		_ = gui.WindowFullscreen{}.ToggleFullscreen()
	}
	return gui.Run(opts)
}
