package types

import (
	"strings"

	"github.com/arthur-debert/stagecheck/pkg/errors"
)

// TestKind selects which external test tool an invocation drives
type TestKind string

const (
	// KindLinkCheck runs the documentation link checker
	KindLinkCheck TestKind = "linkcheck"

	// KindCargoTest runs the package manager's own test suite
	KindCargoTest TestKind = "cargotest"

	// KindCompiletest runs the compiler conformance harness
	KindCompiletest TestKind = "compiletest"
)

// AllTestKinds lists every test kind in a stable order
var AllTestKinds = []TestKind{KindLinkCheck, KindCargoTest, KindCompiletest}

// Tool returns the name of the auxiliary tool binary for the kind
func (k TestKind) Tool() string {
	switch k {
	case KindLinkCheck:
		return "linkchecker"
	default:
		return string(k)
	}
}

func (k TestKind) String() string {
	return string(k)
}

// ParseTestKind parses a test kind name
func ParseTestKind(s string) (TestKind, error) {
	k := TestKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllTestKinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown test kind %q", s).
		WithDetail("kind", s)
}
