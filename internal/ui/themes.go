package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for CLI output and charts.
// ANSI fields hold escape codes for terminal text; hex fields hold
// "#rrggbb" colors used by the chart renderers.
type Theme struct {
	// Name is the identifier of the theme.
	Name string

	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Warning is used for caution messages.
	Warning string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string

	// Paper is the figure background.
	Paper string
	// Plot is the plotting area background.
	Plot string
	// Text is the default font color.
	Text string
	// Grid is used for axis lines and grid lines.
	Grid string
	// Dim is used for hidden legend entries and secondary labels.
	Dim string
	// Series is the colorway assigned to series in order.
	Series []string
}

// darkColorway mirrors the familiar dark charting template colorway.
var darkColorway = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

var (
	// DarkTheme is the default: bright series on a near-black background.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Warning:   "\033[38;5;220m", // Yellow
		Bold:      "\033[1m",
		Reset:     "\033[0m",
		Paper:     "#111111",
		Plot:      "#111111",
		Text:      "#F2F5FA",
		Grid:      "#283442",
		Dim:       "#506784",
		Series:    darkColorway,
	}

	// NoColorTheme disables all ANSI color output. Charts keep their
	// palette so series stay distinguishable in the browser.
	NoColorTheme = Theme{
		Name:   "none",
		Paper:  DarkTheme.Paper,
		Plot:   DarkTheme.Plot,
		Text:   DarkTheme.Text,
		Grid:   DarkTheme.Grid,
		Dim:    DarkTheme.Dim,
		Series: darkColorway,
	}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// SeriesColor returns the colorway entry for the i-th series, cycling
// through the palette.
func (t Theme) SeriesColor(i int) string {
	if len(t.Series) == 0 {
		return t.Text
	}
	if i < 0 {
		i = -i
	}
	return t.Series[i%len(t.Series)]
}

// TUITheme defines lipgloss-compatible colors for the terminal viewer.
type TUITheme struct {
	Bg     lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
	Series []lipgloss.TerminalColor
}

// SeriesColor returns the color for the i-th series.
func (t TUITheme) SeriesColor(i int) lipgloss.TerminalColor {
	if len(t.Series) == 0 {
		return t.Text
	}
	if i < 0 {
		i = -i
	}
	return t.Series[i%len(t.Series)]
}

// GetCurrentTUITheme returns the lipgloss palette matching the active theme.
// When NoColorTheme is active every color is lipgloss.NoColor{}.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return TUITheme{
			Bg:     lipgloss.NoColor{},
			Text:   lipgloss.NoColor{},
			Border: lipgloss.NoColor{},
			Accent: lipgloss.NoColor{},
			Dim:    lipgloss.NoColor{},
		}
	}

	series := make([]lipgloss.TerminalColor, len(currentTheme.Series))
	for i, c := range currentTheme.Series {
		series[i] = lipgloss.Color(c)
	}
	return TUITheme{
		Bg:     lipgloss.Color(currentTheme.Paper),
		Text:   lipgloss.Color(currentTheme.Text),
		Border: lipgloss.Color(currentTheme.Grid),
		Accent: lipgloss.Color(currentTheme.SeriesColor(0)),
		Dim:    lipgloss.Color(currentTheme.Dim),
		Series: series,
	}
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// ColorPrimary returns the primary ANSI code of the active theme.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary ANSI code of the active theme.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorWarning returns the warning ANSI code of the active theme.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorBold returns the bold ANSI code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset ANSI code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
