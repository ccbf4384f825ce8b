package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extinit/extinit/internal/cmdtypes"
	"github.com/extinit/extinit/internal/config"
	"github.com/extinit/extinit/internal/output"
)

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved config file path",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path := configPath(cfg)

			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return fmt.Errorf("checking config file: %w", err)
			}
			output.Debug("config file", "path", path, "exists", exists)

			fmt.Fprintln(c.OutOrStdout(), path)
			return nil
		},
	}
}
