package figure

import (
	"math"

	"github.com/agbru/topviz/internal/toplog"
)

// Option configures Build.
type Option func(*Figure)

// WithSource records the input path on the figure.
func WithSource(path string) Option {
	return func(f *Figure) { f.Source = path }
}

// Build creates the two-panel figure from a parsed dataset. Both panels are
// always present; a panel whose labels are all absent has no series.
func Build(ds toplog.Dataset, opts ...Option) Figure {
	fig := Figure{
		Layout: Layout{
			Template: "dark",
			Annotations: []Annotation{{
				Text:      "",
				XRef:      "paper",
				YRef:      "paper",
				X:         0,
				Y:         0,
				ShowArrow: false,
			}},
			Legend: Legend{
				GroupClick:    GroupClickToggleItem,
				TraceGroupGap: 180,
			},
		},
	}
	for _, opt := range opts {
		opt(&fig)
	}

	color := 0
	percentage := Panel{
		ID:    PanelPercentage,
		Row:   1,
		XAxis: Axis{Title: "sample", Format: FormatNumber},
		YAxis: Axis{Title: "Usage [%]", Format: FormatPercent},
	}
	for _, label := range PercentageLabels {
		if !ds.Has(label) {
			continue
		}
		percentage.Series = append(percentage.Series, buildSeries(ds, label, PanelPercentage, 1, color))
		color++
	}

	memory := Panel{
		ID:    PanelMemory,
		Row:   2,
		XAxis: Axis{Title: "sample", Format: FormatNumber},
		YAxis: Axis{Title: "Memory [Bytes]", Format: FormatBytes},
	}
	for _, label := range MemoryLabels {
		if !ds.Has(label) {
			continue
		}
		memory.Series = append(memory.Series, buildSeries(ds, label, PanelMemory, KiBToBytes, color))
		color++
	}

	fig.Panels = []Panel{percentage, memory}
	return fig
}

func buildSeries(ds toplog.Dataset, label, group string, scale float64, color int) Series {
	samples := ds.Numbers(label)
	s := Series{
		Name:        label,
		LegendGroup: group,
		Mode:        ModeLinesMarkers,
		X:           make([]float64, 0, len(samples.Values)),
		Y:           make([]float64, 0, len(samples.Values)),
		Skipped:     samples.Skipped,
		ColorIndex:  color,
	}
	for i, v := range samples.Values {
		// Scaling can overflow a finite value to Inf.
		y := v * scale
		if math.IsNaN(y) || math.IsInf(y, 0) {
			s.Skipped++
			continue
		}
		s.X = append(s.X, samples.Index[i])
		s.Y = append(s.Y, y)
	}
	return s
}
