// Package config reads the command line and the optional configuration file
// into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/agbru/topviz/internal/errors"
)

// Display modes.
const (
	DisplayAuto     = "auto"
	DisplayTerminal = "terminal"
	DisplayBrowser  = "browser"
)

// DefaultLogLevel is used when neither a flag nor the config file sets one.
const DefaultLogLevel = "warn"

// AppConfig aggregates the application's configuration parameters.
// The flag tag names the command-line flag a field is bound to and is used in
// validation messages.
type AppConfig struct {
	// Filename is the top log to visualize.
	Filename string `flag:"filename"`
	// Display selects the chart backend.
	Display string `flag:"display" validate:"oneof=auto terminal browser"`
	// ConfigFile is an optional TOML file providing defaults.
	ConfigFile string `flag:"config"`
	// NoColor disables colored output.
	NoColor bool `flag:"no-color"`
	// LogLevel is the minimum level of diagnostics written.
	LogLevel string `flag:"log-level" validate:"oneof=debug info warn error"`
	// LogFile redirects diagnostics to a rotated file.
	LogFile string `flag:"log-file"`
	// Verbose is a shortcut for the debug log level.
	Verbose bool `flag:"verbose"`
	// Quiet suppresses the spinner and the summary.
	Quiet bool `flag:"quiet"`
}

// ParseConfig parses the command-line arguments into an AppConfig.
// Flags may appear before or after the filename. Help returns flag.ErrHelp,
// malformed invocations return apperrors.UsageError and invalid values
// apperrors.ConfigError; in all three cases the usage or error has already
// been written to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	config := AppConfig{}

	fs.StringVar(&config.Display, "display", DisplayAuto, "Chart backend: auto, terminal or browser.")
	fs.StringVar(&config.ConfigFile, "config", "", "TOML file with default settings.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn or error.")
	fs.StringVar(&config.LogFile, "log-file", "", "Write logs to this file (rotated) instead of stderr.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Do not print the spinner or the summary.")
	fs.Usage = func() { printUsage(fs, programName) }

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewUsageError("%v", err)
	}

	switch len(positional) {
	case 0:
		return AppConfig{}, usageError(fs, programName, "the following arguments are required: filename")
	case 1:
		config.Filename = positional[0]
	default:
		return AppConfig{}, usageError(fs, programName, "unrecognized arguments: "+strings.Join(positional[1:], " "))
	}

	if config.ConfigFile != "" {
		path, err := expandPath(config.ConfigFile)
		if err != nil {
			return AppConfig{}, reportConfigError(errWriter, apperrors.NewConfigError("config file: %v", err))
		}
		fc, err := LoadFile(path)
		if err != nil {
			return AppConfig{}, reportConfigError(errWriter, err)
		}
		applyFileOverrides(&config, fc, fs)
	}

	if config.Verbose && !isFlagSet(fs, "log-level") {
		config.LogLevel = "debug"
	}
	config.Display = strings.ToLower(strings.TrimSpace(config.Display))
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	if config.LogFile != "" {
		path, err := expandPath(config.LogFile)
		if err != nil {
			return AppConfig{}, reportConfigError(errWriter, apperrors.NewConfigError("log file: %v", err))
		}
		config.LogFile = path
	}

	if err := config.Validate(); err != nil {
		return AppConfig{}, reportConfigError(errWriter, err)
	}
	return config, nil
}

// Validate checks the enumerated settings.
func (c AppConfig) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return apperrors.NewConfigError("configuration validation error: %v", err)
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("invalid value %q for --%s", fmt.Sprint(e.Value()), e.Field())
		if e.Tag() == "oneof" {
			msg += fmt.Sprintf(" (expected one of: %s)", strings.ReplaceAll(e.Param(), " ", ", "))
		}
		msgs = append(msgs, msg)
	}
	return apperrors.NewConfigError("%s", strings.Join(msgs, "; "))
}

// parseInterspersed parses flags until every argument has been consumed,
// collecting the non-flag arguments in order. Everything after "--" is
// positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func printUsage(fs *flag.FlagSet, programName string) {
	out := fs.Output()
	fmt.Fprintf(out, "usage: %s [flags] filename\n\n", filepath.Base(programName))
	fmt.Fprintln(out, "Visualize top performance data.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "positional arguments:")
	fmt.Fprintln(out, "  filename    top log file to process.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "flags:")
	fs.PrintDefaults()
	fmt.Fprintln(out, "  -version")
	fmt.Fprintln(out, "    \tPrint the version and exit.")
}

// usageError prints the usage followed by msg and returns it as a
// UsageError.
func usageError(fs *flag.FlagSet, programName, msg string) error {
	fs.Usage()
	fmt.Fprintf(fs.Output(), "%s: error: %s\n", filepath.Base(programName), msg)
	return apperrors.NewUsageError("%s", msg)
}

func reportConfigError(w io.Writer, err error) error {
	fmt.Fprintf(w, "Configuration error: %v\n", err)
	return err
}
