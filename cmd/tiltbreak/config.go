package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-breakout/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration a round would use, after the config file search
and the --difficulty and --no-jitter overrides, as YAML.

Config files are searched in this order:
  --config <path>
  ~/.tiltbreak/config.yaml
  ./configs/tiltbreak.yaml
  built-in defaults

Examples:
  tiltbreak config
  tiltbreak config --difficulty hard > ~/.tiltbreak/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadGameConfig(opts)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
