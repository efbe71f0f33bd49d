// Package styles provides the lipgloss palette shared by the picker and
// the error output.
package styles

import (
	"image/color"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Palette colors
var (
	// Primary is the title color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent marks the selected item (pink)
	Accent color.Color = lipgloss.Color("212")

	// Error is used for error prefixes (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for secondary text such as remote URLs (gray)
	Muted color.Color = lipgloss.Color("240")
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(Error).Bold(true)

	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Stderr returns a writer that downsamples styled text to what stderr
// supports, stripping colour entirely when it is not a terminal or
// NO_COLOR is set.
func Stderr() io.Writer {
	return NewWriter(os.Stderr, os.Environ())
}

// NewWriter wraps w with colour downsampling for the profile detected from
// w and environ.
func NewWriter(w io.Writer, environ []string) io.Writer {
	return colorprofile.NewWriter(w, environ)
}

// ErrorLine renders an error for display on stderr.
func ErrorLine(err error) string {
	return ErrorStyle.Render("error:") + " " + err.Error()
}
