package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as TOML",
		Long: `Print the settings the editor would start with: defaults, then the
--config file, then flag overrides. Use it to check a settings file or as a
starting point for one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}
			return nil
		},
	}
}
