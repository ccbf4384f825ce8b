package options

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/extinit/extinit/internal/config"
	oerrors "github.com/extinit/extinit/internal/errors"
	"github.com/extinit/extinit/internal/naming"
	"github.com/extinit/extinit/internal/output"
)

// Input holds the raw values gathered by the command layer.
type Input struct {
	// TargetDir is the project directory argument as typed.
	TargetDir string

	OverridePage   Value
	Devtools       bool
	SidePanel      bool
	NoCrossBrowser bool
	Language       Value
	Generation     Value

	// PackageManager and Description are already resolved against
	// flags, environment and config file; empty means built-in default.
	PackageManager string
	Description    string

	SkipInstall bool
	SkipGit     bool

	// Defaults apply when a loose flag is absent.
	Defaults Defaults
}

// Defaults are the configured values used for absent loose flags.
type Defaults struct {
	Language        string
	ManifestVersion string
}

// Resolve validates the input and produces a ProjectConfiguration.
// It never touches the filesystem beyond computing an absolute path.
func Resolve(in Input) (ProjectConfiguration, error) {
	if strings.TrimSpace(in.TargetDir) == "" {
		return ProjectConfiguration{}, oerrors.NewMissingArgumentError("project directory", "extinit my-extension")
	}

	output.Debug("loose flags",
		"override-page", in.OverridePage.Kind,
		"language", in.Language.Kind,
		"manifest-version", in.Generation.Kind,
	)

	page, err := resolvePage(in.OverridePage)
	if err != nil {
		return ProjectConfiguration{}, err
	}

	lang, err := resolveLanguage(in.Language, in.Defaults.Language)
	if err != nil {
		return ProjectConfiguration{}, err
	}

	gen, err := resolveGeneration(in.Generation, in.Defaults.ManifestVersion)
	if err != nil {
		return ProjectConfiguration{}, err
	}

	pm, err := resolvePackageManager(in.PackageManager)
	if err != nil {
		return ProjectConfiguration{}, err
	}

	if page != "" && in.Devtools {
		return ProjectConfiguration{}, oerrors.NewConflictError(
			"--override-page and --devtools cannot be used together",
			"Pass only one of --override-page or --devtools.",
		)
	}

	if in.SidePanel && !gen.SupportsSidePanel() {
		return ProjectConfiguration{}, oerrors.NewConflictError(
			"--side-panel requires manifest version 3",
			"Drop --side-panel or pass --manifest-version=3.",
		)
	}

	crossBrowser := false
	if gen.SupportsCrossBrowser() {
		crossBrowser = !in.NoCrossBrowser
	} else if in.NoCrossBrowser {
		output.Debug("ignoring --no-cross-browser", "generation", gen)
	}

	abs, err := filepath.Abs(in.TargetDir)
	if err != nil {
		return ProjectConfiguration{}, fmt.Errorf("resolving project directory: %w", err)
	}
	name := filepath.Base(abs)

	result := naming.Validate(name)
	if !result.ValidForNewPackages() {
		return ProjectConfiguration{}, oerrors.NewNameInvalidError(name, result.Errors, result.Warnings)
	}

	description := in.Description
	if description == "" {
		description = config.DefaultDescription
	}

	cfg := ProjectConfiguration{
		Name:           name,
		TargetDir:      abs,
		OverridePage:   page,
		Devtools:       in.Devtools,
		SidePanel:      in.SidePanel,
		CrossBrowser:   crossBrowser,
		Language:       lang,
		Generation:     gen,
		PackageManager: pm,
		Description:    description,
		SkipInstall:    in.SkipInstall,
		SkipGit:        in.SkipGit,
	}

	output.Debug("resolved project configuration",
		"name", cfg.Name,
		"variant", cfg.Variant(),
		"language", cfg.Language,
		"generation", cfg.Generation,
		"crossBrowser", cfg.CrossBrowser,
	)

	return cfg, nil
}

func resolvePage(v Value) (PageKind, error) {
	switch v.Kind {
	case Absent:
		return "", nil
	case Default:
		return PageNewTab, nil
	}
	if !slices.Contains(PageKinds, v.Name) {
		return "", oerrors.NewInvalidOptionError("override-page", v.Name, PageKinds)
	}
	return PageKind(v.Name), nil
}

func resolveLanguage(v Value, configured string) (Language, error) {
	name := v.Name
	switch v.Kind {
	case Absent:
		name = configured
		if name == "" {
			name = config.DefaultLanguage
		}
	case Default:
		return LanguageJavaScript, nil
	}
	if !slices.Contains(Languages, name) {
		return "", oerrors.NewInvalidOptionError("language", name, Languages)
	}
	return Language(name), nil
}

func resolveGeneration(v Value, configured string) (Generation, error) {
	name := v.Name
	switch v.Kind {
	case Absent:
		name = configured
		if name == "" {
			name = config.DefaultManifestVersion
		}
	case Default:
		return GenerationMV3, nil
	}
	gen, ok := ParseGeneration(name)
	if !ok {
		return "", oerrors.NewInvalidOptionError("manifest-version", name, Generations)
	}
	return gen, nil
}

// ParseGeneration accepts "2", "3", "mv2" or "mv3", case-insensitively.
func ParseGeneration(s string) (Generation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "mv2":
		return GenerationMV2, true
	case "3", "mv3":
		return GenerationMV3, true
	}
	return "", false
}

func resolvePackageManager(name string) (PackageManager, error) {
	if name == "" {
		return PackageManagerNPM, nil
	}
	if !slices.Contains(PackageManagers, name) {
		return "", oerrors.NewInvalidOptionError("package-manager", name, PackageManagers)
	}
	return PackageManager(name), nil
}
