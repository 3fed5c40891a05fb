// Package ui decides whether terminal output should be styled.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode represents the requested styling of terminal output
type ColorMode int

const (
	// ColorAuto styles output only when writing to a color-capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways always styles output
	ColorAlways
	// ColorNever never styles output
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// Styled reports whether output to f should carry styling under mode m
func (m ColorMode) Styled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return DetectStyled(f)
}

// DetectStyled determines whether f is a color-capable terminal
func DetectStyled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if f == nil || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
