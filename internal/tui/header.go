package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/topviz/internal/format"
)

// HeaderModel renders the top bar: title, version, source file and sample
// count.
type HeaderModel struct {
	version string
	source  string
	samples int
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, source string, samples int) HeaderModel {
	return HeaderModel{
		version: version,
		source:  source,
		samples: samples,
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "topviz"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	parts := titleStyle.Render(titleText)

	pipe := samplesStyle.Render(" | ")
	if h.source != "" {
		parts += pipe + sourceStyle.Render(filepath.Base(h.source))
	}
	parts += pipe + samplesStyle.Render(fmt.Sprintf("%s samples", format.FormatSample(float64(h.samples))))

	innerWidth := max(h.width-2, 0)
	gap := max(innerWidth-lipgloss.Width(parts), 0)

	return headerStyle.Render(parts + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
