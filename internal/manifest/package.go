package manifest

import (
	"fmt"

	"github.com/extinit/extinit/internal/options"
)

const webpackConfig = "config/webpack.config.js"

// Details are the descriptive fields of package.json.
type Details struct {
	Description string

	// PackageManager runs the scripts that call other scripts.
	PackageManager options.PackageManager
}

// Scripts are the package.json scripts. Pack, Repack and Format exist only
// for manifest v3 projects.
type Scripts struct {
	Watch  string `json:"watch"`
	Build  string `json:"build"`
	Pack   string `json:"pack,omitempty"`
	Repack string `json:"repack,omitempty"`
	Format string `json:"format,omitempty"`
}

// Package is package.json.
type Package struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Description string  `json:"description"`
	Private     bool    `json:"private"`
	Scripts     Scripts `json:"scripts"`
}

// BuildPackage synthesizes package.json. For generations that support
// cross-browser builds, watch and build pass CROSS_BROWSER to webpack.
func BuildPackage(name string, details Details, gen options.Generation, crossBrowser bool) Package {
	watch := "webpack --mode=development --watch --config " + webpackConfig
	build := "webpack --mode=production --config " + webpackConfig

	if gen.SupportsCrossBrowser() {
		env := fmt.Sprintf(" --env CROSS_BROWSER=%t", crossBrowser)
		watch += env
		build += env
	}

	scripts := Scripts{Watch: watch, Build: build}
	if gen == options.GenerationMV3 {
		scripts.Pack = "node pack.js"
		scripts.Repack = details.PackageManager.Run("build") + " && " + details.PackageManager.Run("pack")
		scripts.Format = `prettier --write --ignore-unknown "{config,public,src}/**/*.{html,css,js,ts,json}"`
	}

	return Package{
		Name:        name,
		Version:     Version,
		Description: details.Description,
		Private:     true,
		Scripts:     scripts,
	}
}

// HasPackScript reports whether projects of this generation get a pack script.
func HasPackScript(gen options.Generation) bool {
	return gen == options.GenerationMV3
}
