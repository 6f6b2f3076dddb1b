// Package webchart renders a figure as SVG charts embedded in a standalone
// HTML page and opens it in the default browser.
//
// Each panel becomes one go-chart SVG. The page legend is HTML; clicking an
// entry hides that single series (never its whole group) through a CSS
// class carried by the series' SVG elements.
package webchart
