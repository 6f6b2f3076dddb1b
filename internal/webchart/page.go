package webchart

import (
	"bytes"
	"html/template"
	"io"
	"path/filepath"

	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/ui"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>topviz{{with .Source}} - {{.}}{{end}}</title>
<style>
body { background: {{.Theme.Paper}}; color: {{.Theme.Text}}; font-family: sans-serif; margin: 16px; }
h1 { font-size: 16px; font-weight: normal; }
.legend { margin: 8px 0 0 20px; }
.legend button { background: none; border: 1px solid {{.Theme.Grid}}; color: {{.Theme.Text}}; cursor: pointer; margin-right: 6px; padding: 2px 8px; }
.legend button.off { color: {{.Theme.Dim}}; text-decoration: line-through; }
.swatch { display: inline-block; width: 10px; height: 10px; margin-right: 4px; }
{{- range .Panels}}{{range .Entries}}
path.{{.Class}} { stroke: {{.Color}}; stroke-width: 2; fill: none; }
circle.{{.Class}} { fill: {{.Color}}; stroke: {{.Color}}; }
body.hide-{{.Class}} .{{.Class}} { display: none; }
{{- end}}{{end}}
</style>
</head>
<body>
<h1>topviz{{with .Source}} &middot; {{.}}{{end}} &middot; {{.Samples}} samples</h1>
{{- range .Panels}}
<section id="{{.ID}}">
<div class="legend">
{{- range .Entries}}
<button type="button" data-series="{{.Class}}"><span class="swatch" style="background: {{.Color}}"></span>{{.Name}}</button>
{{- else}}
<span>no data</span>
{{- end}}
</div>
{{.SVG}}
</section>
{{- end}}
{{- range .Annotations}}
<div class="annotation">{{.}}</div>
{{- end}}
<script>
document.querySelectorAll(".legend button").forEach(function (b) {
  b.addEventListener("click", function () {
    document.body.classList.toggle("hide-" + b.dataset.series);
    b.classList.toggle("off");
  });
});
</script>
</body>
</html>
`))

type pageEntry struct {
	Name  string
	Class string
	Color template.CSS
}

type pagePanel struct {
	ID      string
	Entries []pageEntry
	SVG     template.HTML
}

type pageData struct {
	Source      string
	Samples     int
	Theme       pageTheme
	Panels      []pagePanel
	Annotations []string
}

type pageTheme struct {
	Paper, Text, Grid, Dim template.CSS
}

// WritePage renders every panel of fig and writes the HTML page to w.
// Annotations with empty text produce no output.
func WritePage(w io.Writer, fig figure.Figure, theme ui.Theme, width, height int) error {
	data := pageData{
		Samples: fig.Samples(),
		Theme: pageTheme{
			Paper: template.CSS(theme.Paper),
			Text:  template.CSS(theme.Text),
			Grid:  template.CSS(theme.Grid),
			Dim:   template.CSS(theme.Dim),
		},
	}
	if fig.Source != "" {
		data.Source = filepath.Base(fig.Source)
	}
	for _, a := range fig.Layout.Annotations {
		if a.Text != "" {
			data.Annotations = append(data.Annotations, a.Text)
		}
	}

	for _, p := range fig.Panels {
		var svg bytes.Buffer
		if err := RenderPanel(&svg, p, theme, width, height); err != nil {
			return err
		}
		pp := pagePanel{ID: p.ID, SVG: template.HTML(svg.String())}
		for _, s := range p.Series {
			pp.Entries = append(pp.Entries, pageEntry{
				Name:  s.Name,
				Class: SeriesClass(s.ColorIndex),
				Color: template.CSS(theme.SeriesColor(s.ColorIndex)),
			})
		}
		data.Panels = append(data.Panels, pp)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return apperrors.RenderError{Backend: "browser", Cause: err}
	}
	return nil
}
