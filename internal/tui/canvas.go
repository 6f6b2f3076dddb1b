package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBlank is the empty braille cell (U+2800).
const brailleBlank rune = 0x2800

// brailleDots maps (col 0-1, row 0-3) to the braille dot bit offsets.
// Braille character = U+2800 + sum of activated dot bits.
// Column 0: dots 1,2,3,7 (bits 0,1,2,6)
// Column 1: dots 4,5,6,8 (bits 3,4,5,7)
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40}, // left column
	{0x08, 0x10, 0x20, 0x80}, // right column
}

// Canvas is a braille dot grid. Each character cell holds 2×4 dots and
// remembers the last series that drew into it, which selects its color.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
	owner  [][]int
}

// NewCanvas creates a canvas of width×height character cells.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	c := &Canvas{width: width, height: height}
	c.cells = make([][]rune, height)
	c.owner = make([][]int, height)
	for r := range c.cells {
		c.cells[r] = make([]rune, width)
		c.owner[r] = make([]int, width)
		for col := range c.cells[r] {
			c.cells[r][col] = brailleBlank
			c.owner[r][col] = -1
		}
	}
	return c
}

// DotSize returns the dot resolution of the canvas.
func (c *Canvas) DotSize() (cols, rows int) {
	return c.width * 2, c.height * 4
}

// Set lights the dot at (x, y); (0, 0) is the top-left dot. Out of range
// dots are ignored.
func (c *Canvas) Set(x, y, series int) {
	cols, rows := c.DotSize()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	cr, cc := y/4, x/2
	c.cells[cr][cc] |= brailleDots[x%2][y%4]
	c.owner[cr][cc] = series
}

// Line draws a straight segment between two dots (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1, series int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, series)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Marker draws a 2×2 dot block anchored on (x, y).
func (c *Canvas) Marker(x, y, series int) {
	for _, d := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		c.Set(x+d[0], y+d[1], series)
	}
}

// Owner returns the series that last drew into a character cell, or -1.
func (c *Canvas) Owner(col, row int) int {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return -1
	}
	return c.owner[row][col]
}

// Plain returns the canvas rows without styling.
func (c *Canvas) Plain() []string {
	out := make([]string, c.height)
	for r := range c.cells {
		out[r] = string(c.cells[r])
	}
	return out
}

// Render returns the canvas rows, coloring each run of cells owned by the
// same series with the style returned by styleFor.
func (c *Canvas) Render(styleFor func(series int) lipgloss.Style) []string {
	out := make([]string, c.height)
	for r := range c.cells {
		var b strings.Builder
		start := 0
		for col := 1; col <= c.width; col++ {
			if col < c.width && c.owner[r][col] == c.owner[r][start] {
				continue
			}
			run := string(c.cells[r][start:col])
			if owner := c.owner[r][start]; owner >= 0 {
				run = styleFor(owner).Render(run)
			}
			b.WriteString(run)
			start = col
		}
		out[r] = b.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
