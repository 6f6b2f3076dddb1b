//go:generate mockgen -source=display.go -destination=mocks/mock_display.go -package=mocks

// Package display selects the backend that shows a figure to the user.
package display

import (
	"context"
	"os"

	"golang.org/x/term"

	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/logging"
	"github.com/agbru/topviz/internal/tui"
	"github.com/agbru/topviz/internal/webchart"
)

// Displayer shows a figure interactively. Display blocks until the backend
// has taken over (browser) or the user is done (terminal).
type Displayer interface {
	Display(ctx context.Context, fig figure.Figure) error
}

// Display modes.
const (
	ModeAuto     = "auto"
	ModeTerminal = "terminal"
	ModeBrowser  = "browser"
)

// Options configures New.
type Options struct {
	Version string
	Logger  logging.Logger
	// IsTerminal reports whether the process is attached to an interactive
	// terminal. Nil means stdin and stdout are checked.
	IsTerminal func() bool
}

// ResolveMode maps auto to terminal when running interactively and to
// browser otherwise.
func ResolveMode(mode string, isTerminal func() bool) (string, error) {
	switch mode {
	case ModeTerminal, ModeBrowser:
		return mode, nil
	case ModeAuto, "":
		if isTerminal == nil {
			isTerminal = stdioIsTerminal
		}
		if isTerminal() {
			return ModeTerminal, nil
		}
		return ModeBrowser, nil
	default:
		return "", apperrors.NewConfigError("unknown display mode %q", mode)
	}
}

// New returns the Displayer for mode.
func New(mode string, opts Options) (Displayer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	resolved, err := ResolveMode(mode, opts.IsTerminal)
	if err != nil {
		return nil, err
	}
	logger.Debug("display selected", logging.String("mode", resolved), logging.String("requested", mode))

	if resolved == ModeTerminal {
		return tui.Viewer{Version: opts.Version}, nil
	}
	return webchart.Viewer{Logger: logger}, nil
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
