package webchart

import (
	"context"
	"os"

	"github.com/pkg/browser"

	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/logging"
	"github.com/agbru/topviz/internal/ui"
)

// Viewer writes the figure page to a temporary file and asks the default
// browser to open it.
type Viewer struct {
	// Dir holds the page; empty means os.TempDir().
	Dir string
	// Open opens a local file; nil means browser.OpenFile.
	Open   func(path string) error
	Logger logging.Logger
	Width  int
	Height int
}

// Display renders fig and returns once the browser has been asked to open
// the page. The page file is left in place for the browser to read.
func (v Viewer) Display(ctx context.Context, fig figure.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := v.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	open := v.Open
	if open == nil {
		open = browser.OpenFile
	}
	width, height := v.Width, v.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	f, err := os.CreateTemp(v.Dir, "topviz-*.html")
	if err != nil {
		return apperrors.RenderError{Backend: "browser", Cause: apperrors.WrapError(err, "create page")}
	}
	path := f.Name()
	if err := WritePage(f, fig, ui.GetCurrentTheme(), width, height); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return apperrors.RenderError{Backend: "browser", Cause: apperrors.WrapError(err, "write page")}
	}

	logger.Info("opening chart page", logging.String("path", path))
	if err := open(path); err != nil {
		return apperrors.RenderError{Backend: "browser", Cause: apperrors.WrapError(err, "open %s", path)}
	}
	return nil
}
