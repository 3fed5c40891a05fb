// Package style holds the lipgloss styles for stagecheck's own output.
// Harness output is never styled; it streams through untouched.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}
)

var (
	ProgressStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Painter renders styled text, or plain text when disabled
type Painter struct {
	enabled bool
}

// NewPainter creates a Painter; enabled false yields plain text
func NewPainter(enabled bool) Painter {
	return Painter{enabled: enabled}
}

func (p Painter) render(s lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return s.Render(text)
}

// Progress renders a step banner
func (p Painter) Progress(text string) string {
	return p.render(ProgressStyle, text)
}

// Error renders an error line
func (p Painter) Error(text string) string {
	return p.render(ErrorStyle, text)
}

// Success renders a success line
func (p Painter) Success(text string) string {
	return p.render(SuccessStyle, text)
}

// Muted renders secondary text
func (p Painter) Muted(text string) string {
	return p.render(MutedStyle, text)
}
