package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extinit/extinit/internal/cmdtypes"
	"github.com/extinit/extinit/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show extinit version information.

Displays the CLI version, commit, build date and Go toolchain.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			fmt.Fprintln(c.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}
