package toolchain

import (
	"github.com/arthur-debert/stagecheck/pkg/types"
)

// Resolver yields filesystem locations for a built compiler stage
type Resolver interface {
	// Tool returns the auxiliary tool binary built by compiler c
	Tool(c types.Compiler, name string) (string, error)

	// CompilerPath returns the compiler executable for c
	CompilerPath(c types.Compiler) (string, error)

	// Rustdoc returns the documentation generator for c
	Rustdoc(c types.Compiler) (string, error)

	// RustcLibdir returns the directory holding the compiler's own runtime libraries
	RustcLibdir(c types.Compiler) (string, error)

	// SysrootLibdir returns the target runtime library directory in c's sysroot
	SysrootLibdir(c types.Compiler, target types.Triple) (string, error)

	// Sysroot returns the sysroot of c
	Sysroot(c types.Compiler) string

	// LLVMFileCheck returns the FileCheck binary built for the build triple
	LLVMFileCheck(build types.Triple) (string, error)

	// TestHelpersOut returns the directory holding native test helper objects for target
	TestHelpersOut(target types.Triple) string
}
