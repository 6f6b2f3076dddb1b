// This file contains the TOML configuration file loader and the override
// table that merges it under the command-line flags.

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	apperrors "github.com/agbru/topviz/internal/errors"
)

// FileConfig is the content of a configuration file. Absent keys stay nil
// so they never override a default.
type FileConfig struct {
	Display  *string `toml:"display"`
	NoColor  *bool   `toml:"no_color"`
	LogLevel *string `toml:"log_level"`
	LogFile  *string `toml:"log_file"`
	Quiet    *bool   `toml:"quiet"`
}

// LoadFile reads and decodes a configuration file. Unknown keys are
// rejected. Every failure is an apperrors.ConfigError.
func LoadFile(path string) (FileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("open config: %v", err)
	}
	defer file.Close()

	var fc FileConfig
	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&fc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return FileConfig{}, apperrors.NewConfigError("parse config %s: %s", path, strings.TrimSpace(strict.String()))
		}
		return FileConfig{}, apperrors.NewConfigError("parse config %s: %v", path, err)
	}
	return fc, nil
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// fileOverride maps one configuration file setting to the flag(s) that take
// precedence over it.
type fileOverride struct {
	flags []string
	apply func(*AppConfig, FileConfig)
}

var fileOverrides = []fileOverride{
	{[]string{"display"}, func(c *AppConfig, f FileConfig) {
		if f.Display != nil {
			c.Display = *f.Display
		}
	}},
	{[]string{"no-color"}, func(c *AppConfig, f FileConfig) {
		if f.NoColor != nil {
			c.NoColor = *f.NoColor
		}
	}},
	{[]string{"log-level"}, func(c *AppConfig, f FileConfig) {
		if f.LogLevel != nil {
			c.LogLevel = *f.LogLevel
		}
	}},
	{[]string{"log-file"}, func(c *AppConfig, f FileConfig) {
		if f.LogFile != nil {
			c.LogFile = *f.LogFile
		}
	}},
	{[]string{"quiet", "q"}, func(c *AppConfig, f FileConfig) {
		if f.Quiet != nil {
			c.Quiet = *f.Quiet
		}
	}},
}

// applyFileOverrides copies file values into the configuration for every
// setting that was not given on the command line.
// Priority: CLI flags > config file > defaults.
func applyFileOverrides(config *AppConfig, fc FileConfig, fs *flag.FlagSet) {
	for _, o := range fileOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		o.apply(config, fc)
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
