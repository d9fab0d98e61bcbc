package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Level colors of the pretty handler.
var (
	infoColor  = lipgloss.Color("#667085")
	warnColor  = lipgloss.Color("#F59E0B")
	errorColor = lipgloss.Color("#D93025")
)

// Level markers prefixed to warnings and errors.
const (
	warnMark  = "!"
	errorMark = "✗"
)

// ColorProfile returns the color profile for log output.
// NO_COLOR forces Ascii, otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// newOutput creates a termenv.Output writing to w, or to stderr when w is nil.
func newOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))
}
