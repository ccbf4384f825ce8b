// Package config provides configuration loading and management.
package config

// Built-in defaults used when neither a flag, an environment variable
// nor the config file supplies a value.
const (
	DefaultLanguage        = "javascript"
	DefaultManifestVersion = "3"
	DefaultPackageManager  = "npm"
	DefaultDescription     = "My Chrome Extension"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the user's extinit defaults.
// Loaded from $XDG_CONFIG_HOME/extinit/config.yaml and EXTINIT_* variables.
type Config struct {
	// Language is the default source language (javascript, typescript).
	// Env: EXTINIT_LANGUAGE
	Language string `mapstructure:"language" yaml:"language,omitempty"`

	// ManifestVersion selects the manifest generation (2 or 3).
	// Env: EXTINIT_MANIFEST_VERSION
	ManifestVersion string `mapstructure:"manifestVersion" yaml:"manifestVersion,omitempty"`

	// PackageManager installs build dependencies (npm, yarn, pnpm).
	// Env: EXTINIT_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// Description is written into package.json, the manifest and the README.
	// Env: EXTINIT_DESCRIPTION
	Description string `mapstructure:"description" yaml:"description,omitempty"`

	// SkipInstall disables dependency installation.
	// Env: EXTINIT_SKIP_INSTALL
	SkipInstall bool `mapstructure:"skipInstall" yaml:"skipInstall,omitempty"`

	// SkipGit disables repository initialization.
	// Env: EXTINIT_SKIP_GIT
	SkipGit bool `mapstructure:"skipGit" yaml:"skipGit,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `extinit config init` to write the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Language:        DefaultLanguage,
		ManifestVersion: DefaultManifestVersion,
		PackageManager:  DefaultPackageManager,
		Description:     DefaultDescription,
	}
}
