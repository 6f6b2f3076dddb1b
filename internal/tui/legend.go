package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/topviz/internal/figure"
)

// legendEntry is one series as shown in a panel legend.
type legendEntry struct {
	index    int // position across the whole figure
	series   figure.Series
	hidden   bool
	selected bool
}

// legendItem is a laid-out legend entry. start and end are content columns
// of the panel (0 is the first column inside the border).
type legendItem struct {
	entry legendEntry
	text  string
	start int
	end   int
}

const legendGap = 2

// layoutLegend positions the entries on the legend line. Rendering and mouse
// hit-testing both use this layout.
func layoutLegend(entries []legendEntry) []legendItem {
	items := make([]legendItem, 0, len(entries))
	x := 1
	for _, e := range entries {
		marker := "●"
		if e.hidden {
			marker = "○"
		}
		text := fmt.Sprintf("%d %s %s", e.index+1, marker, e.series.Name)
		w := lipgloss.Width(text)
		items = append(items, legendItem{entry: e, text: text, start: x, end: x + w})
		x += w + legendGap
	}
	return items
}

// hitLegend returns the figure-wide index of the entry under column x.
func hitLegend(items []legendItem, x int) (int, bool) {
	for _, it := range items {
		if x >= it.start && x < it.end {
			return it.entry.index, true
		}
	}
	return 0, false
}

// renderLegend draws the legend line, right-aligning title when it fits.
func renderLegend(items []legendItem, title string, width int) string {
	var b strings.Builder
	b.WriteString(" ")
	used := 1
	for i, it := range items {
		if i > 0 {
			b.WriteString(spaces(legendGap))
			used += legendGap
		}
		b.WriteString(renderLegendItem(it))
		used += it.end - it.start
	}
	if gap := width - used - lipgloss.Width(title) - 1; title != "" && gap >= legendGap {
		b.WriteString(spaces(gap))
		b.WriteString(axisTitleStyle.Render(title))
		b.WriteString(" ")
	}
	return b.String()
}

func renderLegendItem(it legendItem) string {
	if it.entry.hidden {
		style := legendOffStyle
		if it.entry.selected {
			style = style.Underline(true)
		}
		return style.Render(it.text)
	}
	nameStyle := legendStyle
	if it.entry.selected {
		nameStyle = nameStyle.Underline(true).Bold(true)
	}
	num, rest, _ := strings.Cut(it.text, " ")
	marker, name, _ := strings.Cut(rest, " ")
	return legendStyle.Render(num+" ") +
		seriesStyle(it.entry.series.ColorIndex).Render(marker) +
		legendStyle.Render(" ") + nameStyle.Render(name)
}
