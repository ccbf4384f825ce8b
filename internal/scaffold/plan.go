// Package scaffold writes a generated extension project to disk.
package scaffold

import (
	"github.com/extinit/extinit/internal/manifest"
	"github.com/extinit/extinit/internal/options"
	"github.com/extinit/extinit/internal/templates"
)

// Plan is everything Materialize writes, computed up front without I/O.
type Plan struct {
	Config          options.ProjectConfiguration
	Selection       templates.Selection
	Package         manifest.Package
	Manifest        manifest.Manifest
	DevDependencies []string
	Readme          templates.ReadmeData
}

// NewPlan derives the plan for a resolved configuration.
func NewPlan(cfg options.ProjectConfiguration) Plan {
	displayName := cfg.DisplayName()

	return Plan{
		Config:    cfg,
		Selection: templates.Select(cfg),
		Package: manifest.BuildPackage(
			cfg.Name,
			manifest.Details{Description: cfg.Description, PackageManager: cfg.PackageManager},
			cfg.Generation,
			cfg.CrossBrowser,
		),
		Manifest:        manifest.BuildManifest(cfg, displayName),
		DevDependencies: manifest.DevDependencies(cfg),
		Readme: templates.ReadmeData{
			DisplayName:    displayName,
			Description:    cfg.Description,
			PackageManager: cfg.PackageManager,
			HasPack:        manifest.HasPackScript(cfg.Generation),
		},
	}
}
