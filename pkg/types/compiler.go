package types

import (
	"fmt"
	"strings"
)

// Triple is a platform target triple such as x86_64-unknown-linux-gnu
type Triple string

// IsWindows reports whether the triple names a Windows-family platform
func (t Triple) IsWindows() bool {
	return strings.Contains(string(t), "windows")
}

// IsApple reports whether the triple names a Darwin-family platform
func (t Triple) IsApple() bool {
	return strings.Contains(string(t), "apple")
}

// ExeSuffix returns the executable file suffix for the platform
func (t Triple) ExeSuffix() string {
	if t.IsWindows() {
		return ".exe"
	}
	return ""
}

// Exe appends the platform executable suffix to name
func (t Triple) Exe(name string) string {
	return name + t.ExeSuffix()
}

func (t Triple) String() string {
	return string(t)
}

// Compiler identifies one point in the staged build: a bootstrap stage
// and the host it runs on. It is a value; copy it freely.
type Compiler struct {
	Stage uint32
	Host  Triple
}

// NewCompiler creates a Compiler for the given stage and host
func NewCompiler(stage uint32, host Triple) Compiler {
	return Compiler{Stage: stage, Host: host}
}

// String renders the compiler the way progress lines show it
func (c Compiler) String() string {
	return fmt.Sprintf("stage%d (%s)", c.Stage, c.Host)
}
