//go:build js && wasm

// runner-web is the browser build of the runner. Build with
//
//	GOOS=js GOARCH=wasm go build -o runner.wasm ./cmd/runner-web
//
// and serve it with wasm_exec.js. An element with id "fullscreen", when the
// page has one, toggles fullscreen on click; the F key does the same.
package main

import (
	"os"
	"syscall/js"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/platform/gui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner-web"})

	cfg, err := config.LoadRunner("")
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}

	game, err := gui.NewGame(gui.Options{
		Runner:  cfg,
		Runtime: core.DefaultConfig(),
		Player:  "web",
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal("cannot start", "error", err)
	}

	js.Global().Set("getScore", js.FuncOf(func(this js.Value, args []js.Value) any {
		return js.ValueOf(game.Runner().Snapshot().Score)
	}))
	release := gui.BindFullscreenControls("fullscreen")
	defer release()

	if err := gui.RunGame(game, "Dusk Runner"); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}
