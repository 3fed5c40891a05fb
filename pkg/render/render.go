// Package render prints built invocations for plans and dry runs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format represents the rendering format
type Format string

const (
	// FormatText renders one shell command line per invocation
	FormatText Format = "text"
	// FormatYAML renders a YAML document
	FormatYAML Format = "yaml"
	// FormatTOML renders a TOML document with one [[invocation]] table each
	FormatTOML Format = "toml"
)

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "plain", "sh":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

type document struct {
	Invocations []types.Invocation `yaml:"invocations" toml:"invocation"`
}

// Render writes invocations to w in the given format
func Render(w io.Writer, format Format, invs ...types.Invocation) error {
	switch format {
	case FormatText:
		for _, inv := range invs {
			if _, err := fmt.Fprintln(w, CommandLine(inv)); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Invocations: invs}); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(document{Invocations: invs}); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format)
	}
}

// CommandLine renders inv as a copy-pasteable shell command with its
// environment overrides as a KEY=value prefix in sorted key order.
func CommandLine(inv types.Invocation) string {
	parts := make([]string, 0, len(inv.Env)+len(inv.Args)+1)
	for _, k := range inv.EnvKeys() {
		parts = append(parts, k+"="+Quote(inv.Env[k]))
	}
	for _, a := range inv.Argv() {
		parts = append(parts, Quote(a))
	}
	return strings.Join(parts, " ")
}

// Quote quotes s for a POSIX shell when it needs it
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("_@%+=:,./-", r):
		return false
	}
	return true
}
