package templates

import (
	"path"

	"github.com/extinit/extinit/internal/options"
)

// Layer directory names inside the template filesystem.
const (
	dirShared   = "shared"
	dirConfig   = "config"
	dirDotfiles = "dotfiles"
	dirPack     = "pack"
)

// Select maps a configuration to the template layers that compose the
// project. Order: language and variant sources, shared variant assets,
// language build config, shared build config, dotfiles, pack helper.
func Select(cfg options.ProjectConfiguration) Selection {
	variant := cfg.Variant()
	lang := string(cfg.Language)

	return Selection{
		Variant:    variant,
		Language:   cfg.Language,
		Generation: cfg.Generation,
		Layers: []Layer{
			{Dir: path.Join(lang, string(variant))},
			{Dir: path.Join(dirShared, string(variant))},
			{Dir: path.Join(dirConfig, lang), Prefix: dirConfig},
			{Dir: path.Join(dirConfig, dirShared), Prefix: dirConfig},
			{Dir: dirDotfiles, DotPrefix: true},
			{Dir: dirPack},
		},
	}
}
