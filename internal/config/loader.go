package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for extinit configuration.
const envPrefix = "EXTINIT"

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	"language":        "EXTINIT_LANGUAGE",
	"manifestVersion": "EXTINIT_MANIFEST_VERSION",
	"packageManager":  "EXTINIT_PACKAGE_MANAGER",
	"description":     "EXTINIT_DESCRIPTION",
	"skipInstall":     "EXTINIT_SKIP_INSTALL",
	"skipGit":         "EXTINIT_SKIP_GIT",
	"log.timestamps":  "EXTINIT_LOG_TIMESTAMPS",
}

// EnvVar returns the environment variable bound to a config key.
func EnvVar(key string) string {
	if key == "config" {
		return "EXTINIT_CONFIG"
	}
	return envBindings[key]
}

// Loader handles loading and merging configuration from the config file
// and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// A missing file is not an error; environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = DefaultPaths().ConfigFile
	}

	l.v.SetConfigFile(ExpandTilde(configFile))
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		configFile = DefaultPaths().ConfigFile
	}

	_, err := os.Stat(ExpandTilde(configFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
