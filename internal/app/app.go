package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/agbru/topviz/internal/cli"
	"github.com/agbru/topviz/internal/config"
	"github.com/agbru/topviz/internal/display"
	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/logging"
	"github.com/agbru/topviz/internal/toplog"
	"github.com/agbru/topviz/internal/ui"
)

// Application represents the topviz application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	displayer display.Displayer
	logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithDisplayer replaces the display backend selected from the
// configuration.
func WithDisplayer(d display.Displayer) AppOption {
	return func(a *Application) { a.displayer = d }
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "topviz"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run parses the log, builds the figure and hands it to the display. It
// returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	logger, closeLog, err := a.setupLogger()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	defer closeLog()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if err := a.visualize(ctx, out, logger); err != nil {
		logger.Debug("run failed", logging.Err(err))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

func (a *Application) visualize(ctx context.Context, out io.Writer, logger logging.Logger) error {
	path := a.Config.Filename

	var res toplog.Result
	start := time.Now()
	err := cli.WithSpinner(out, a.Config.Quiet, "Parsing "+filepath.Base(path)+"...", func() error {
		var err error
		res, err = toplog.ParseFile(path, toplog.WithLogger(logger))
		return err
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := res.Stats
	logger.Info("log parsed",
		logging.String("file", path),
		logging.Int("lines", st.Lines),
		logging.Int("header_rows", st.HeaderRows),
		logging.Int("data_rows", st.DataRows),
		logging.Int("columns", res.Dataset.NumColumns()),
		logging.String("elapsed", elapsed.String()),
	)

	fig := figure.Build(res.Dataset, figure.WithSource(path))
	for _, s := range fig.Series() {
		if s.Skipped > 0 {
			logger.Warn("non-numeric cells left out of the chart",
				logging.String("column", s.Name), logging.Int("cells", s.Skipped))
		}
	}
	if !a.Config.Quiet {
		cli.PrintDatasetSummary(out, path, res, fig, elapsed)
	}

	d := a.displayer
	if d == nil {
		d, err = display.New(a.Config.Display, display.Options{Version: Version, Logger: logger})
		if err != nil {
			return err
		}
	}
	return d.Display(ctx, fig)
}

// setupLogger builds the logger described by the configuration. The
// returned func releases the log file, if any.
func (a *Application) setupLogger() (logging.Logger, func(), error) {
	if a.logger != nil {
		return a.logger, func() {}, nil
	}
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return nil, nil, apperrors.NewConfigError("%v", err)
	}
	if a.Config.LogFile != "" {
		logger, closer := logging.NewFileLogger(a.Config.LogFile, level)
		return logger, func() { closer.Close() }, nil
	}
	noColor := a.Config.NoColor || os.Getenv("NO_COLOR") != ""
	return logging.NewConsoleLogger(a.ErrWriter, level, noColor), func() {}, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
