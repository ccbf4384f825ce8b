// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/extinit/extinit/internal/cmdtypes"
	"github.com/extinit/extinit/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Manage the extinit configuration file.

The file holds defaults for new projects. Flags and EXTINIT_* environment
variables override it.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigPathCmd(cfg))

	return c
}

// configPath returns the path resolved at startup, or resolves it now when
// the command runs without the root command's pre-run hook.
func configPath(cfg *cmdtypes.GlobalConfig) string {
	if cfg != nil && cfg.ConfigPath != "" {
		return config.ExpandTilde(cfg.ConfigPath)
	}
	return config.ExpandTilde(config.ResolveConfigPath("").Value)
}
