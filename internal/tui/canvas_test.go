package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/topviz/internal/figure"
)

func TestCanvas_SetMapsDotsToBrailleBits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, 0x2801},
		{1, 0, 0x2808},
		{0, 3, 0x2840},
		{1, 3, 0x2880},
	}
	for _, tt := range tests {
		c := NewCanvas(1, 1)
		c.Set(tt.x, tt.y, 0)
		if got := []rune(c.Plain()[0])[0]; got != tt.want {
			t.Errorf("Set(%d,%d) = %U, want %U", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCanvas_SetOutOfRangeIgnored(t *testing.T) {
	t.Parallel()
	c := NewCanvas(2, 1)
	c.Set(-1, 0, 0)
	c.Set(4, 0, 0)
	c.Set(0, 4, 0)
	for _, row := range c.Plain() {
		for _, r := range row {
			if r != brailleBlank {
				t.Fatalf("unexpected dot: %q", row)
			}
		}
	}
}

func TestCanvas_LineIsContinuous(t *testing.T) {
	t.Parallel()
	c := NewCanvas(4, 2) // 8×8 dots
	c.Line(0, 7, 7, 0, 3)

	// A diagonal crosses every column and every row of cells.
	for col := range 4 {
		hit := false
		for row := range 2 {
			if c.Owner(col, row) == 3 {
				hit = true
			}
		}
		if !hit {
			t.Errorf("column %d not crossed:\n%s", col, strings.Join(c.Plain(), "\n"))
		}
	}
}

func TestCanvas_MarkerFillsBlock(t *testing.T) {
	t.Parallel()
	c := NewCanvas(1, 1)
	c.Marker(0, 0, 1)
	if got := []rune(c.Plain()[0])[0]; got != 0x2800|0x01|0x08|0x02|0x10 {
		t.Errorf("Marker = %U", got)
	}
	if c.Owner(0, 0) != 1 {
		t.Errorf("Owner = %d, want 1", c.Owner(0, 0))
	}
	if c.Owner(5, 5) != -1 {
		t.Error("Owner outside the canvas should be -1")
	}
}

func TestCanvas_RenderKeepsWidth(t *testing.T) {
	t.Parallel()
	c := NewCanvas(6, 2)
	c.Line(0, 0, 11, 7, 0)
	c.Marker(4, 4, 1)
	for i, row := range c.Render(func(int) lipgloss.Style { return lipgloss.NewStyle() }) {
		if w := lipgloss.Width(row); w != 6 {
			t.Errorf("row %d width = %d, want 6", i, w)
		}
	}
}

func TestPlotSeries_Corners(t *testing.T) {
	t.Parallel()
	c := NewCanvas(5, 2) // 10×8 dots
	s := figure.Series{X: []float64{0, 4}, Y: []float64{0, 10}}
	ext, _ := figure.ComputeExtent([]figure.Series{s})
	plotSeries(c, s, ext)

	rows := c.Plain()
	if []rune(rows[1])[0] == brailleBlank {
		t.Errorf("first sample not at bottom-left:\n%s", strings.Join(rows, "\n"))
	}
	if []rune(rows[0])[4] == brailleBlank {
		t.Errorf("last sample not at top-right:\n%s", strings.Join(rows, "\n"))
	}
}

func TestPlotSeries_SinglePoint(t *testing.T) {
	t.Parallel()
	c := NewCanvas(3, 1)
	s := figure.Series{X: []float64{0}, Y: []float64{7}}
	ext, ok := figure.ComputeExtent([]figure.Series{s})
	if !ok {
		t.Fatal("extent not ok")
	}
	plotSeries(c, s, ext)
	if c.Owner(0, 0) != 0 {
		t.Errorf("single point not drawn:\n%s", c.Plain()[0])
	}
}
