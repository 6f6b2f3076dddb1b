// Package logging provides a unified logging interface for topviz.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the parser, the figure builder and the display backends while supporting
// multiple backends (zerolog console, rotating JSON file, stdlib log).
package logging
