package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dusk-runner/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a run would use, after the config search
order and the --difficulty preset are applied.

Search order:
  --config <path>
  ~/.dusk-runner/configs/runner.yaml
  ./configs/runner.yaml
  built-in defaults

Examples:
  runner config
  runner config --difficulty hard
  runner config --defaults > ~/.dusk-runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
