package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/extinit/extinit/internal/cmdtypes"
	"github.com/extinit/extinit/internal/cmdutil"
	"github.com/extinit/extinit/internal/config"
	oerrors "github.com/extinit/extinit/internal/errors"
	"github.com/extinit/extinit/internal/installer"
	"github.com/extinit/extinit/internal/options"
	"github.com/extinit/extinit/internal/scaffold"
	"github.com/extinit/extinit/internal/templates"
	"github.com/extinit/extinit/internal/vcs"
)

// materializerFor builds the materializer for a resolved project.
// Tests replace it to avoid running a real package manager.
var materializerFor = func(cfg options.ProjectConfiguration) *scaffold.Materializer {
	return &scaffold.Materializer{
		FS:        afero.NewOsFs(),
		Templates: templates.FS(),
		Installer: installer.New(cfg.PackageManager),
		Repo:      vcs.New(),
	}
}

func runCreate(c *cobra.Command, args []string, globals *cmdtypes.GlobalConfig, tf *cmdutil.TemplateFlags, sf *cmdutil.SetupFlags) error {
	args = tf.ClaimValues(args)
	if len(args) == 0 {
		err := oerrors.NewMissingArgumentError("project directory", c.Root().Name()+" my-extension")
		cmdutil.PrintError(c.ErrOrStderr(), err)
		_ = c.Usage()
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err, Printed: true}
	}

	cfg := globals.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	in := options.Input{
		TargetDir: args[0],
		Defaults: options.Defaults{
			Language:        cfg.Language,
			ManifestVersion: cfg.ManifestVersion,
		},
	}
	tf.Apply(c, &in)
	config.LogResolvedValues(sf.Apply(c, cfg, &in))

	project, err := options.Resolve(in)
	if err != nil {
		return exitError(c, err)
	}

	plan := scaffold.NewPlan(project)

	result, err := materializerFor(project).Materialize(c.Context(), plan)
	if err != nil {
		return exitError(c, err)
	}

	cmdutil.PrintSummary(plan, result)
	return nil
}

// exitError prints err and wraps it so main exits without printing again.
func exitError(c *cobra.Command, err error) error {
	cmdutil.PrintError(c.ErrOrStderr(), err)
	return &cmdtypes.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
}
