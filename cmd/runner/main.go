// runner is an endless side-scrolling runner for the terminal, a desktop
// window, and SSH.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner window            - Play in a desktop window
//	runner menu              - Start menu with play and high scores
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show high scores
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--db <path>          - Set database path (default: ~/.dusk-runner/scores.db)
//	--config <path>      - Use a custom runner YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn, error
//	--watch              - Reload the config file when it changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dusk Runner - an endless side-scroller",
	Long: `Dusk Runner is an endless side-scrolling runner. Jump over the
incoming enemies; every enemy that leaves the screen scores a point.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Start menu with play and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  runner play
  runner window --assets ./assets
  runner menu --difficulty hard
  runner serve --ssh :2222
  runner scores --interactive`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dusk-runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (needs --config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
