package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/topviz/internal/ui"
)

// Style variables for the chart viewer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	sourceStyle     lipgloss.Style
	samplesStyle    lipgloss.Style
	axisStyle       lipgloss.Style
	axisTitleStyle  lipgloss.Style
	emptyStyle      lipgloss.Style
	legendStyle     lipgloss.Style
	legendOffStyle  lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style

	// seriesStyles holds one foreground style per colorway entry.
	seriesStyles []lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Display after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	sourceStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	samplesStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	axisStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	axisTitleStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Italic(true)

	emptyStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	legendStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	legendOffStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Strikethrough(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	seriesStyles = seriesStyles[:0]
	for _, c := range t.Series {
		seriesStyles = append(seriesStyles, lipgloss.NewStyle().Foreground(c))
	}
}

// seriesStyle returns the foreground style of the i-th colorway entry.
func seriesStyle(i int) lipgloss.Style {
	if len(seriesStyles) == 0 {
		return lipgloss.NewStyle()
	}
	return seriesStyles[i%len(seriesStyles)]
}
