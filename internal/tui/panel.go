package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/format"
)

// Panel chrome: top and bottom border, legend line, x axis and its labels.
const (
	panelChrome    = 5
	minChartRows   = 2
	minChartWidth  = 4
	minPanelHeight = panelChrome + minChartRows
)

// panelView renders one figure panel inside a bordered box.
type panelView struct {
	panel   figure.Panel
	entries []legendEntry
	width   int // outer width, borders included
	height  int // outer height, borders included
}

func (p panelView) innerWidth() int {
	return max(p.width-2, minChartWidth+2)
}

func (p panelView) chartRows() int {
	return max(p.height-panelChrome, minChartRows)
}

func (p panelView) legend() []legendItem {
	return layoutLegend(p.entries)
}

func (p panelView) visibleSeries() []figure.Series {
	var out []figure.Series
	for _, e := range p.entries {
		if !e.hidden {
			out = append(out, e.series)
		}
	}
	return out
}

// View renders the panel.
func (p panelView) View() string {
	inner := p.innerWidth()
	rows := p.chartRows()
	visible := p.visibleSeries()
	ext, hasData := figure.ComputeExtent(visible)

	labels := make([]string, rows)
	labels[0] = formatTick(p.panel.YAxis.Format, ext.YMax)
	labels[rows-1] = formatTick(p.panel.YAxis.Format, ext.YMin)
	if mid := rows / 2; rows >= 5 {
		labels[mid] = formatTick(p.panel.YAxis.Format, ext.YMax-(ext.YMax-ext.YMin)*float64(mid)/float64(rows-1))
	}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	chartWidth := max(inner-labelWidth-2, minChartWidth)

	canvas := NewCanvas(chartWidth, rows)
	for _, s := range visible {
		plotSeries(canvas, s, ext)
	}
	plot := canvas.Render(seriesStyle)

	lines := make([]string, 0, rows+3)
	lines = append(lines, renderLegend(p.legend(), p.panel.YAxis.Title, inner))
	for r := range rows {
		tick := "│"
		if labels[r] != "" {
			tick = "┤"
		}
		row := plot[r]
		if !hasData && r == rows/2 {
			row = emptyStyle.Render(center("no data", chartWidth))
		}
		lines = append(lines, axisStyle.Render(padLeft(labels[r], labelWidth)+" "+tick)+row)
	}
	lines = append(lines, axisStyle.Render(spaces(labelWidth+1)+"└"+strings.Repeat("─", chartWidth)))
	lines = append(lines, spaces(labelWidth+2)+xAxisLabels(p.panel.XAxis.Title, ext.XMax, chartWidth))

	return panelStyle.Width(inner).Render(strings.Join(lines, "\n"))
}

// plotSeries draws s as connected points with a marker on every sample.
func plotSeries(c *Canvas, s figure.Series, ext figure.Extent) {
	cols, rows := c.DotSize()
	xScale := float64(cols-2) / ext.XMax
	yScale := float64(rows-2) / (ext.YMax - ext.YMin)

	var prevX, prevY int
	for i := range s.X {
		x := int(math.Round(s.X[i] * xScale))
		y := int(math.Round((ext.YMax - s.Y[i]) * yScale))
		if i > 0 {
			c.Line(prevX, prevY, x, y, s.ColorIndex)
		}
		c.Marker(x, y, s.ColorIndex)
		prevX, prevY = x, y
	}
}

func formatTick(f figure.AxisFormat, v float64) string {
	switch f {
	case figure.FormatPercent:
		return format.FormatPercent(v)
	case figure.FormatBytes:
		return format.FormatBytes(v)
	default:
		return format.FormatSample(v)
	}
}

// xAxisLabels lays out "0", the axis title and the last sample index on a
// line of the given width.
func xAxisLabels(title string, xmax float64, width int) string {
	left := "0"
	right := format.FormatSample(xmax)
	line := []rune(spaces(width))
	copy(line, []rune(left))
	if rr := []rune(right); len(rr) < width-len(left) {
		copy(line[width-len(rr):], rr)
	}
	if tr := []rune(title); len(tr)+2*max(len(left), len(right))+2 <= width {
		copy(line[(width-len(tr))/2:], tr)
	}
	return axisStyle.Render(string(line))
}

func padLeft(s string, width int) string {
	return spaces(width-lipgloss.Width(s)) + s
}

func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return spaces(gap/2) + s + spaces(gap-gap/2)
}
