// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cmdconfig "github.com/extinit/extinit/internal/cmd/config"
	"github.com/extinit/extinit/internal/cmdtypes"
	"github.com/extinit/extinit/internal/cmdutil"
	"github.com/extinit/extinit/internal/config"
	"github.com/extinit/extinit/internal/output"
	"github.com/extinit/extinit/internal/templates"
	"github.com/extinit/extinit/internal/version"
)

// NewRootCmd creates the root command for the extinit CLI. The root command
// itself creates a project; version and config are sub-commands.
func NewRootCmd() *cobra.Command {
	globals := &cmdtypes.GlobalConfig{}
	templateFlags := &cmdutil.TemplateFlags{}
	setupFlags := &cmdutil.SetupFlags{}

	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "extinit <project-directory>",
		Short: "Create a browser extension project",
		Long: `extinit scaffolds a ready-to-build browser extension project.

Only <project-directory> is required. The directory is created when missing;
its base name becomes the package name and must follow npm naming rules.

Flags that take an optional value accept it as --flag=value or as the next
argument, for example --override-page history. Passed bare they select their
default.

A project directory named like a sub-command (config, version) must be
given as a path, for example ./config.

` + variantHelp(),
		Example: `  extinit my-extension
  extinit my-extension --language typescript --override-page=history
  extinit ./config
  extinit my-extension --manifest-version=2 --no-cross-browser
  extinit my-extension --side-panel --package-manager yarn`,
		Version:       version.Get().Version,
		Args: func(c *cobra.Command, args []string) error {
			return cobra.MaximumNArgs(1)(c, templateFlags.ClaimValues(args))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, globals, configFlag, verboseFlag, timestampsFlag)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, globals, templateFlags, setupFlags)
		},
	}

	rootCmd.SetVersionTemplate("extinit version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: EXTINIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	templateFlags.AddTo(rootCmd)
	setupFlags.AddTo(rootCmd)

	rootCmd.AddCommand(NewVersionCmd(globals))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(globals))

	return rootCmd
}

// variantHelp lists the template variants in precedence order.
func variantHelp() string {
	var b strings.Builder
	b.WriteString("Templates, highest precedence first:")
	for _, v := range templates.Variants() {
		flag := v.Flag
		if flag == "" {
			flag = "(default)"
		}
		fmt.Fprintf(&b, "\n  %-17s %s", flag, v.Description)
	}
	return b.String()
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, globals *cmdtypes.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	configPath := config.ResolveConfigPath(configFlag)

	cfg, loadErr := config.NewLoader().Load(configPath.Value)
	if loadErr != nil {
		cfg = &config.Config{}
	}

	// Timestamps: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{Verbose: verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		// Commands that don't need config must keep working.
		output.Warn("ignoring config file", "path", configPath.Value, "err", loadErr)
	}

	globals.Config = cfg
	globals.ConfigPath = configPath.Value
	globals.Verbose = verbose

	info := version.Get()
	output.Debug("extinit started", "version", info.Version, "commit", info.GitCommit)
	config.LogResolvedValues([]config.ResolvedValue{configPath})

	return nil
}
