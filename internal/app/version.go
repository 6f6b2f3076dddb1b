package app

import (
	"fmt"
	"io"
)

// Version is set at build time with -ldflags "-X github.com/agbru/topviz/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version. Arguments after
// "--" are positional and never match.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--version", "-version":
			return true
		}
	}
	return false
}

// PrintVersion writes the program name and version.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "topviz %s\n", Version)
}
