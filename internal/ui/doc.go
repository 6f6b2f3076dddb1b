// Package ui provides theme and color support for the application's user interface.
// It defines the dark chart palette shared by the terminal viewer and the browser
// renderer, and the ANSI escape codes used for plain CLI output.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between parsing logic and presentation.
package ui
