package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/format"
	"github.com/agbru/topviz/internal/toplog"
	"github.com/agbru/topviz/internal/ui"
)

// PrintDatasetSummary writes a short report of what was parsed and which
// series will be plotted.
func PrintDatasetSummary(out io.Writer, path string, res toplog.Result, fig figure.Figure, elapsed time.Duration) {
	st := res.Stats
	fmt.Fprintf(out, "%s%s%s: %s samples, %d columns, %d header rows %s(parsed in %s)%s\n",
		ui.ColorBold(), filepath.Base(path), ui.ColorReset(),
		format.FormatSample(float64(fig.Samples())),
		res.Dataset.NumColumns(), st.HeaderRows,
		ui.ColorSecondary(), format.FormatExecutionDuration(elapsed), ui.ColorReset())

	for _, p := range fig.Panels {
		names := make([]string, 0, len(p.Series))
		for _, s := range p.Series {
			names = append(names, s.Name)
		}
		list := strings.Join(names, ", ")
		if list == "" {
			list = ui.ColorWarning() + "no matching columns" + ui.ColorReset()
		}
		fmt.Fprintf(out, "  %s%-10s%s %s\n", ui.ColorPrimary(), p.ID, ui.ColorReset(), list)
	}

	if issues := malformedSummary(st); issues != "" {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorWarning(), issues, ui.ColorReset())
	}
}

func malformedSummary(st toplog.Stats) string {
	var parts []string
	if st.TruncatedCells > 0 {
		parts = append(parts, fmt.Sprintf("%d extra fields dropped", st.TruncatedCells))
	}
	if st.MissingCells > 0 {
		parts = append(parts, fmt.Sprintf("%d missing cells", st.MissingCells))
	}
	if st.OrphanRows > 0 {
		parts = append(parts, fmt.Sprintf("%d rows before any header", st.OrphanRows))
	}
	if len(parts) == 0 {
		return ""
	}
	return "warning: " + strings.Join(parts, "; ")
}
