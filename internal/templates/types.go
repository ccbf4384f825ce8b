// Package templates holds the embedded project template trees and decides
// which of them compose a project.
package templates

import (
	"path"

	"github.com/extinit/extinit/internal/options"
)

// Layer is one template tree copied into the project.
type Layer struct {
	// Dir is the tree's root inside the template filesystem.
	Dir string

	// Prefix is the project subdirectory the tree is copied into.
	Prefix string

	// DotPrefix renames every file with a leading dot.
	DotPrefix bool
}

// Target maps a path relative to the layer root to its project path.
func (l Layer) Target(rel string) string {
	if l.DotPrefix {
		dir, file := path.Split(rel)
		rel = dir + "." + file
	}
	return path.Join(l.Prefix, rel)
}

// LayerFile is a single file a layer provides.
type LayerFile struct {
	// Source is the path inside the template filesystem.
	Source string

	// Target is the slash-separated path relative to the project root.
	Target string
}

// Selection is the template plan for one configuration.
type Selection struct {
	Variant    options.Variant
	Language   options.Language
	Generation options.Generation

	// Layers are in composition order. When two layers provide the same
	// target path the earlier one wins.
	Layers []Layer
}

// ReadmeData is the input to the README template.
type ReadmeData struct {
	DisplayName    string
	Description    string
	PackageManager options.PackageManager

	// HasPack reports whether the project has a pack script.
	HasPack bool
}

// RunCommand returns the shell command that runs a package script.
func (d ReadmeData) RunCommand(script string) string {
	return d.PackageManager.Run(script)
}
