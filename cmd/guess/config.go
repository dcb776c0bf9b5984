package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/guess-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in YAML configuration. Save it as
~/.guess/config.yaml or ./configs/guess.yaml and edit it to customize.

Example:
  guess config > ~/.guess/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
