package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// appName is the directory name used under XDG base directories.
const appName = "extinit"

// Paths contains standard filesystem paths for extinit.
type Paths struct {
	// ConfigFile is the path to the config file.
	ConfigFile string

	// ConfigDir is the directory holding the config file.
	ConfigDir string
}

// DefaultPaths returns the default paths, rooted at $XDG_CONFIG_HOME.
func DefaultPaths() *Paths {
	dir := filepath.Join(xdg.ConfigHome, appName)
	return &Paths{
		ConfigFile: filepath.Join(dir, "config.yaml"),
		ConfigDir:  dir,
	}
}

// ExpandTilde expands a leading ~ to the user's home directory.
// ~username forms and tildes elsewhere in the path are left alone.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
