// Package cmdutil provides shared command utilities for project creation.
// It centralizes flag group management and output formatting helpers.
package cmdutil

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/extinit/extinit/internal/config"
	"github.com/extinit/extinit/internal/options"
)

// LooseFlagNames are the flags whose value is optional. The value is either
// attached with "=" (--override-page=history) or the next argument
// (--override-page history).
var LooseFlagNames = []string{"override-page", "language", "manifest-version"}

// looseValue is a string flag with an optional value. When given bare it
// records the position of the next positional argument, which ClaimValues
// may later hand to it.
type looseValue struct {
	value *string
	bare  map[int]*string
	narg  func() int
}

func (v *looseValue) String() string { return *v.value }

func (v *looseValue) Type() string { return "string" }

func (v *looseValue) Set(s string) error {
	*v.value = s
	for pos, target := range v.bare {
		if target == v.value {
			delete(v.bare, pos)
		}
	}
	if s == options.BareValue {
		v.bare[v.narg()] = v.value
	}
	return nil
}

// TemplateFlags holds flags that pick the template variant, language and
// manifest generation.
type TemplateFlags struct {
	OverridePage    string
	Devtools        bool
	SidePanel       bool
	Language        string
	ManifestVersion string
	NoCrossBrowser  bool

	// bare maps a positional argument index to the loose flag given bare
	// right before it.
	bare map[int]*string
}

// AddTo registers the template flags on the given cobra command.
func (f *TemplateFlags) AddTo(cmd *cobra.Command) {
	f.bare = map[int]*string{}

	f.looseVar(cmd, &f.OverridePage, "override-page",
		"Override a browser `page`: newtab, bookmarks or history (bare: newtab)")
	cmd.Flags().BoolVar(&f.Devtools, "devtools", false,
		"Create a Developer Tools panel extension")
	cmd.Flags().BoolVar(&f.SidePanel, "side-panel", false,
		"Create a side panel extension (manifest version 3 only)")
	f.looseVar(cmd, &f.Language, "language",
		"Source `language`: javascript or typescript (bare: javascript)")
	f.looseVar(cmd, &f.ManifestVersion, "manifest-version",
		"Manifest `version`: 2 or 3 (bare: 3)")
	cmd.Flags().BoolVar(&f.NoCrossBrowser, "no-cross-browser", false,
		"Skip the WebExtension polyfill for manifest version 2 projects")
}

func (f *TemplateFlags) looseVar(cmd *cobra.Command, p *string, name, usage string) {
	flags := cmd.Flags()
	flags.Var(&looseValue{value: p, bare: f.bare, narg: flags.NArg}, name, usage)
	flags.Lookup(name).NoOptDefVal = options.BareValue
}

// ClaimValues gives each bare loose flag the positional argument that
// followed it, for as long as more than one positional argument is left.
// A single remaining argument is always the project directory. It returns
// the unclaimed arguments and is safe to call again with the same args.
func (f *TemplateFlags) ClaimValues(args []string) []string {
	if len(args) < 2 || len(f.bare) == 0 {
		return args
	}

	positions := make([]int, 0, len(f.bare))
	for pos := range f.bare {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	claimed := make(map[int]bool, len(positions))
	left := len(args)
	for _, pos := range positions {
		if left < 2 {
			break
		}
		if pos >= len(args) {
			continue
		}
		*f.bare[pos] = args[pos]
		claimed[pos] = true
		left--
	}

	rest := make([]string, 0, left)
	for i, arg := range args {
		if !claimed[i] {
			rest = append(rest, arg)
		}
	}
	return rest
}

// Apply copies the template flags into in. Loose flags record whether they
// were absent, bare or named.
func (f *TemplateFlags) Apply(cmd *cobra.Command, in *options.Input) {
	flags := cmd.Flags()

	in.OverridePage = options.ParseLoose(flags.Changed("override-page"), f.OverridePage)
	in.Devtools = f.Devtools
	in.SidePanel = f.SidePanel
	in.Language = options.ParseLoose(flags.Changed("language"), f.Language)
	in.Generation = options.ParseLoose(flags.Changed("manifest-version"), f.ManifestVersion)
	in.NoCrossBrowser = f.NoCrossBrowser
}

// SetupFlags holds flags that control how the project is set up.
// Each has a config file key and an EXTINIT_* environment variable.
type SetupFlags struct {
	PackageManager string
	Description    string
	SkipInstall    bool
	SkipGit        bool
}

// AddTo registers the setup flags on the given cobra command.
func (f *SetupFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.PackageManager, "package-manager", "",
		"Package manager: npm, yarn or pnpm (env: EXTINIT_PACKAGE_MANAGER)")
	cmd.Flags().StringVar(&f.Description, "description", "",
		"Project description (env: EXTINIT_DESCRIPTION)")
	cmd.Flags().BoolVar(&f.SkipInstall, "skip-install", false,
		"Do not install dependencies (env: EXTINIT_SKIP_INSTALL)")
	cmd.Flags().BoolVar(&f.SkipGit, "skip-git", false,
		"Do not initialize a git repository (env: EXTINIT_SKIP_GIT)")
}

// Apply resolves the setup flags against cfg with precedence
// flag > env > config > default, copies the winners into in, and returns
// the resolved values for logging.
func (f *SetupFlags) Apply(cmd *cobra.Command, cfg *config.Config, in *options.Input) []config.ResolvedValue {
	if cfg == nil {
		cfg = &config.Config{}
	}
	flags := cmd.Flags()

	pm := config.Resolve(config.ResolveOptions{
		Key:         "packageManager",
		FlagValue:   f.PackageManager,
		FlagSet:     flags.Changed("package-manager"),
		ConfigValue: cfg.PackageManager,
		Default:     config.DefaultPackageManager,
	})
	description := config.Resolve(config.ResolveOptions{
		Key:         "description",
		FlagValue:   f.Description,
		FlagSet:     flags.Changed("description"),
		ConfigValue: cfg.Description,
		Default:     config.DefaultDescription,
	})
	skipInstall := resolveBool(flags.Changed("skip-install"), "skipInstall", f.SkipInstall, cfg.SkipInstall)
	skipGit := resolveBool(flags.Changed("skip-git"), "skipGit", f.SkipGit, cfg.SkipGit)

	in.PackageManager = pm.Value
	in.Description = description.Value
	in.SkipInstall = skipInstall.Value == "true"
	in.SkipGit = skipGit.Value == "true"

	return []config.ResolvedValue{pm, description, skipInstall, skipGit}
}

// resolveBool resolves a boolean setting. The config loader cannot tell an
// explicit false from an absent key, so only true counts as configured.
func resolveBool(flagSet bool, key string, flagValue, configValue bool) config.ResolvedValue {
	var fromConfig string
	if configValue {
		fromConfig = "true"
	}
	return config.Resolve(config.ResolveOptions{
		Key:         key,
		FlagValue:   strconv.FormatBool(flagValue),
		FlagSet:     flagSet,
		ConfigValue: fromConfig,
		Default:     "false",
	})
}
