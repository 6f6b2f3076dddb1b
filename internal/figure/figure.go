// Package figure turns a parsed top log into a renderer-neutral description
// of the two stacked charts: a percentage panel and a memory panel.
package figure

import "math"

// Panel identifiers.
const (
	PanelPercentage = "percentage"
	PanelMemory     = "memory"
)

// KiBToBytes converts the monitor's KiB columns to bytes. The decimal factor
// is intentional and matches the legacy plots.
const KiBToBytes = 1000

// Column labels plotted on each panel, in drawing order.
var (
	PercentageLabels = []string{"%CPU", "%MEM"}
	MemoryLabels     = []string{"RES", "SWAP", "VIRT", "SHR", "DATA", "CODE", "USED"}
)

// Mode is how a series is drawn.
type Mode string

// ModeLinesMarkers draws connected lines with a marker on every sample.
const ModeLinesMarkers Mode = "lines+markers"

// AxisFormat selects how tick values are printed.
type AxisFormat uint8

const (
	FormatNumber AxisFormat = iota
	FormatPercent
	FormatBytes
)

// Axis describes one panel axis.
type Axis struct {
	Title  string
	Format AxisFormat
}

// Series is one plotted column. X holds 0-based sample positions; Y the
// plotted values. Cells that were not finite numbers are absent from both
// and counted in Skipped.
type Series struct {
	Name        string
	LegendGroup string
	Mode        Mode
	X           []float64
	Y           []float64
	Skipped     int
	// ColorIndex is the position of the series across the whole figure and
	// selects its colorway entry.
	ColorIndex int
}

// Len returns the number of plotted points.
func (s Series) Len() int { return len(s.X) }

// Panel is one chart of the figure.
type Panel struct {
	ID     string
	Row    int // 1-based, top to bottom
	XAxis  Axis
	YAxis  Axis
	Series []Series
}

// Empty reports whether the panel has nothing to draw.
func (p Panel) Empty() bool {
	for _, s := range p.Series {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// Annotation is free text placed on the figure in paper coordinates.
type Annotation struct {
	Text      string
	XRef      string
	YRef      string
	X         float64
	Y         float64
	ShowArrow bool
}

// GroupClickToggleItem makes a legend click toggle only the clicked series.
const GroupClickToggleItem = "toggleitem"

// Legend configures legend interaction.
type Legend struct {
	GroupClick    string
	TraceGroupGap int
}

// Layout holds figure-wide styling.
type Layout struct {
	Template    string
	Annotations []Annotation
	Legend      Legend
}

// Figure is the complete chart description handed to a display backend.
type Figure struct {
	Source string
	Panels []Panel
	Layout Layout
}

// Panel returns the panel with the given id.
func (f Figure) Panel(id string) (Panel, bool) {
	for _, p := range f.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

// Series returns every series of the figure in legend order.
func (f Figure) Series() []Series {
	var out []Series
	for _, p := range f.Panels {
		out = append(out, p.Series...)
	}
	return out
}

// Samples returns the longest x extent of any series, i.e. the number of
// samples on the x axis.
func (f Figure) Samples() int {
	n := 0
	for _, s := range f.Series() {
		if s.Len() > 0 {
			n = max(n, int(s.X[s.Len()-1])+1)
		}
	}
	return n
}

// Extent is the data bounds of a set of series.
type Extent struct {
	XMax float64
	YMin float64
	YMax float64
}

// ComputeExtent returns bounds covering every point of the given series.
// The y range always includes zero and is never degenerate. ok is false
// when there are no points.
func ComputeExtent(series []Series) (e Extent, ok bool) {
	e = Extent{YMin: math.Inf(1), YMax: math.Inf(-1)}
	for _, s := range series {
		for i := range s.X {
			ok = true
			e.XMax = max(e.XMax, s.X[i])
			e.YMin = min(e.YMin, s.Y[i])
			e.YMax = max(e.YMax, s.Y[i])
		}
	}
	if !ok {
		return Extent{XMax: 1, YMin: 0, YMax: 1}, false
	}
	e.YMin = min(e.YMin, 0)
	e.YMax = max(e.YMax, 0)
	if e.YMax == e.YMin {
		e.YMax = e.YMin + 1
	}
	if e.XMax == 0 {
		e.XMax = 1
	}
	return e, true
}
