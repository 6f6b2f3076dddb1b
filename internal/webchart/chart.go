package webchart

import (
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/format"
	"github.com/agbru/topviz/internal/ui"
)

// Default panel size in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 420
)

// SeriesClass is the CSS class of every SVG element drawn for the series
// with the given color index.
func SeriesClass(colorIndex int) string {
	return fmt.Sprintf("series-%d", colorIndex)
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// RenderPanel writes one panel as an SVG document.
func RenderPanel(w io.Writer, p figure.Panel, theme ui.Theme, width, height int) error {
	ext, _ := figure.ComputeExtent(p.Series)

	textStyle := chart.Style{
		FontColor:   hexColor(theme.Text),
		StrokeColor: hexColor(theme.Grid),
	}
	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: hexColor(theme.Paper),
			Padding:   chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: hexColor(theme.Plot),
		},
		XAxis: chart.XAxis{
			Name:           p.XAxis.Title,
			NameStyle:      textStyle,
			Style:          textStyle,
			Range:          &chart.ContinuousRange{Min: 0, Max: ext.XMax},
			ValueFormatter: tickFormatter(p.XAxis.Format),
		},
		YAxis: chart.YAxis{
			Name:           p.YAxis.Title,
			NameStyle:      textStyle,
			Style:          textStyle,
			Range:          &chart.ContinuousRange{Min: ext.YMin, Max: ext.YMax},
			ValueFormatter: tickFormatter(p.YAxis.Format),
			GridMajorStyle: chart.Style{StrokeColor: hexColor(theme.Grid), StrokeWidth: 1},
		},
	}

	for _, s := range p.Series {
		if s.Len() == 0 {
			continue
		}
		color := hexColor(theme.SeriesColor(s.ColorIndex))
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				ClassName:   SeriesClass(s.ColorIndex),
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}
	if len(graph.Series) == 0 {
		// go-chart needs one visible series; this one draws nothing.
		graph.Series = []chart.Series{chart.ContinuousSeries{
			Name:    "empty",
			XValues: []float64{0, ext.XMax},
			YValues: []float64{ext.YMin, ext.YMin},
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				StrokeWidth: 0,
				DotColor:    drawing.ColorTransparent,
				DotWidth:    0,
			},
		}}
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return apperrors.RenderError{Backend: "browser", Cause: fmt.Errorf("%s panel: %w", p.ID, err)}
	}
	return nil
}

func tickFormatter(f figure.AxisFormat) chart.ValueFormatter {
	return func(v interface{}) string {
		x, ok := v.(float64)
		if !ok {
			return fmt.Sprint(v)
		}
		switch f {
		case figure.FormatPercent:
			return format.FormatPercent(x)
		case figure.FormatBytes:
			return format.FormatBytes(x)
		default:
			return format.FormatSample(x)
		}
	}
}
