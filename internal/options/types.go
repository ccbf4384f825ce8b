// Package options turns raw command-line values into a validated,
// immutable project configuration.
package options

import (
	"github.com/extinit/extinit/internal/naming"
)

// PageKind is a browser page an extension can override.
type PageKind string

const (
	PageNewTab    PageKind = "newtab"
	PageBookmarks PageKind = "bookmarks"
	PageHistory   PageKind = "history"
)

// PageKinds lists the accepted values for --override-page.
var PageKinds = []string{string(PageNewTab), string(PageBookmarks), string(PageHistory)}

// Language is the source language of the generated project.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
)

// Languages lists the accepted values for --language.
var Languages = []string{string(LanguageJavaScript), string(LanguageTypeScript)}

// Generation selects the extension manifest schema and background model.
type Generation string

const (
	// GenerationMV2 uses manifest_version 2 with a non-persistent background page.
	GenerationMV2 Generation = "mv2"

	// GenerationMV3 uses manifest_version 3 with a background service worker.
	GenerationMV3 Generation = "mv3"
)

// Generations lists the accepted values for --manifest-version.
var Generations = []string{"2", "3", string(GenerationMV2), string(GenerationMV3)}

// ManifestVersion returns the manifest_version number for the generation.
func (g Generation) ManifestVersion() int {
	if g == GenerationMV2 {
		return 2
	}
	return 3
}

// SupportsCrossBrowser reports whether builds for this generation can be
// made cross-browser with the WebExtension polyfill.
func (g Generation) SupportsCrossBrowser() bool {
	return g == GenerationMV2
}

// SupportsSidePanel reports whether the generation has the side panel API.
func (g Generation) SupportsSidePanel() bool {
	return g == GenerationMV3
}

// PackageManager is the tool used to install development dependencies.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
)

// Run returns the shell command that runs a package script. The zero value
// runs through npm.
func (pm PackageManager) Run(script string) string {
	switch pm {
	case PackageManagerYarn, PackageManagerPNPM:
		return string(pm) + " run " + script
	default:
		return "npm run " + script
	}
}

// PackageManagers lists the accepted values for --package-manager.
var PackageManagers = []string{string(PackageManagerNPM), string(PackageManagerYarn), string(PackageManagerPNPM)}

// Variant is the template shape of the generated extension.
type Variant string

const (
	VariantPopup        Variant = "popup"
	VariantOverridePage Variant = "override-page"
	VariantDevtools     Variant = "devtools"
	VariantSidePanel    Variant = "side-panel"
)

// ProjectConfiguration is the resolved set of options for one run.
// It is built once by Resolve and passed by value afterwards.
type ProjectConfiguration struct {
	// Name is the package name, the base name of TargetDir.
	Name string

	// TargetDir is the absolute path of the project directory.
	TargetDir string

	// OverridePage is the overridden browser page, empty when none.
	OverridePage PageKind

	Devtools     bool
	SidePanel    bool
	CrossBrowser bool

	Language       Language
	Generation     Generation
	PackageManager PackageManager
	Description    string

	SkipInstall bool
	SkipGit     bool
}

// HasOverridePage reports whether a browser page is overridden.
func (c ProjectConfiguration) HasOverridePage() bool {
	return c.OverridePage != ""
}

// Variant derives the template variant. Precedence is override page,
// then devtools, then side panel, then popup.
func (c ProjectConfiguration) Variant() Variant {
	switch {
	case c.HasOverridePage():
		return VariantOverridePage
	case c.Devtools:
		return VariantDevtools
	case c.SidePanel:
		return VariantSidePanel
	default:
		return VariantPopup
	}
}

// DisplayName is the human-facing project title.
func (c ProjectConfiguration) DisplayName() string {
	return naming.DisplayName(c.Name)
}

// IsTypeScript reports whether the project is written in TypeScript.
func (c ProjectConfiguration) IsTypeScript() bool {
	return c.Language == LanguageTypeScript
}
