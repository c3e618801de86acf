package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/storage"
)

// newLogger builds the command logger. Terminal modes pass a log file so the
// alternate screen is not written over.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "runner",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.dusk-runner/runner.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".dusk-runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadConfig resolves --config and applies --difficulty.
func loadConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// startWatch returns a reload channel for --watch, or nil when watching is off.
// Reloaded configs get the --difficulty preset applied like the initial one.
// The returned stop func is always safe to call.
func startWatch(logger *log.Logger) (<-chan config.RunnerConfig, func(), error) {
	if !flagWatch {
		return nil, func() {}, nil
	}
	if flagConfig == "" {
		return nil, func() {}, fmt.Errorf("--watch needs --config")
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, func() {}, err
	}

	w, err := config.NewWatcher(flagConfig)
	if err != nil {
		return nil, func() {}, err
	}
	logger.Info("watching config", "path", w.Path())

	out := make(chan config.RunnerConfig, 1)
	go func() {
		defer close(out)
		for {
			select {
			case cfg, ok := <-w.Reloads:
				if !ok {
					return
				}
				config.ApplyPreset(&cfg, preset)
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config reload failed", "error", err)
			}
		}
	}()

	return out, func() { _ = w.Close() }, nil
}

// openStore opens the scores database. Failure is logged and play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalRuntime sizes the runtime config to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// localPlayer names scores recorded from this machine.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.DefaultPlayer
}
