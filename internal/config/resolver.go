package config

import (
	"os"

	"github.com/extinit/extinit/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"

	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"

	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"

	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a single resolved setting with its provenance.
type ResolvedValue struct {
	// Key is the config key (e.g. "language").
	Key string

	// Value is the winning value.
	Value string

	// Source indicates where Value came from.
	Source ConfigSource

	// Shadowed contains values overridden by higher precedence sources.
	Shadowed map[ConfigSource]string
}

// ResolveOptions describes the candidate values for one setting.
type ResolveOptions struct {
	// Key is the config key; it also selects the environment variable.
	Key string

	// FlagValue is the flag value; only used when FlagSet is true.
	FlagValue string

	// FlagSet reports whether the user passed the flag explicitly.
	FlagSet bool

	// ConfigValue is the loaded value (config file or environment).
	ConfigValue string

	// Default is the built-in default.
	Default string
}

// Resolve picks a value using precedence flag > env > config > default.
//
// The loader already folds EXTINIT_* variables into ConfigValue; Resolve
// only inspects the environment to label the source correctly.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	configSource := SourceConfig
	if env := EnvVar(opts.Key); env != "" {
		if v, ok := os.LookupEnv(env); ok && v != "" && v == opts.ConfigValue {
			configSource = SourceEnv
		}
	}

	switch {
	case opts.FlagSet:
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if opts.ConfigValue != "" {
			result.Shadowed[configSource] = opts.ConfigValue
		}
		result.Shadowed[SourceDefault] = opts.Default
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = configSource
		result.Shadowed[SourceDefault] = opts.Default
	default:
		result.Value = opts.Default
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) EXTINIT_CONFIG env, (3) XDG default.
func ResolveConfigPath(flagValue string) ResolvedValue {
	return Resolve(ResolveOptions{
		Key:         "config",
		FlagValue:   flagValue,
		FlagSet:     flagValue != "",
		ConfigValue: os.Getenv("EXTINIT_CONFIG"),
		Default:     DefaultPaths().ConfigFile,
	})
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
