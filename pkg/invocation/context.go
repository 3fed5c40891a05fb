package invocation

import (
	"github.com/arthur-debert/stagecheck/pkg/paths"
	"github.com/arthur-debert/stagecheck/pkg/types"
)

// Flags carries what the user passed on the command line
type Flags struct {
	// Verbose is set when verbose output was requested on the command line
	Verbose bool

	// Args are passed through to compiletest verbatim, in order
	Args []string
}

// BuildContext is the read-only view of the build an invocation is built against
type BuildContext struct {
	// Paths locates the source and output trees
	Paths paths.Paths

	// Build is the triple of the machine running the build
	Build types.Triple

	// Cargo is the package manager binary under test
	Cargo string

	// ConfigVerbose is the verbose setting from configuration
	ConfigVerbose bool

	Flags Flags
}

// Verbose reports whether either configuration or flags ask for verbose output
func (c BuildContext) Verbose() bool {
	return c.ConfigVerbose || c.Flags.Verbose
}

// Defaults are harness arguments that have no better source than configuration
type Defaults struct {
	// Python is the interpreter compiletest shells out to. The plain
	// "python" name is a known heuristic; it is configurable, not detected.
	Python string

	// AndroidCrossPath is passed as --android-cross-path. Android cross
	// testing is unsupported, so this is empty by default.
	AndroidCrossPath string

	// HostRustcflags is the relocation flag used for host and target builds
	HostRustcflags string
}

// DefaultDefaults returns the stock harness defaults
func DefaultDefaults() Defaults {
	return Defaults{
		Python:           "python",
		AndroidCrossPath: "",
		HostRustcflags:   "-Crpath",
	}
}
