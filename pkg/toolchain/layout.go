package toolchain

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/filesystem"
	"github.com/arthur-debert/stagecheck/pkg/logging"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/rs/zerolog"
)

const (
	toolsProfile   = "release"
	fileCheckName  = "FileCheck"
	testHelpersDir = "rust-test-helpers"
)

// Layout resolves artifacts under the conventional build output tree
type Layout struct {
	outDir   string
	llvmRoot string
	fs       types.FS
	logger   zerolog.Logger
}

// LayoutOptions configures a Layout
type LayoutOptions struct {
	// OutDir is the build output root
	OutDir string

	// Build is the triple of the machine running the build. It locates
	// the default LLVM tree when LLVMRoot is empty.
	Build types.Triple

	// LLVMRoot overrides the LLVM installation whose bin holds FileCheck
	LLVMRoot string

	// FS checks artifact existence; nil means the OS filesystem
	FS types.FS
}

// NewLayout creates a Layout resolver
func NewLayout(opts LayoutOptions) *Layout {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	llvmRoot := opts.LLVMRoot
	if llvmRoot == "" {
		llvmRoot = filepath.Join(opts.OutDir, string(opts.Build), "llvm", "build")
	}
	return &Layout{
		outDir:   opts.OutDir,
		llvmRoot: llvmRoot,
		fs:       fs,
		logger:   logging.GetLogger("toolchain"),
	}
}

// Sysroot returns <out>/<host>/stage<N>
func (l *Layout) Sysroot(c types.Compiler) string {
	return filepath.Join(l.outDir, string(c.Host), fmt.Sprintf("stage%d", c.Stage))
}

func (l *Layout) toolsDir(c types.Compiler) string {
	return filepath.Join(l.outDir, string(c.Host), fmt.Sprintf("stage%d-tools", c.Stage), toolsProfile)
}

// Tool returns <out>/<host>/stage<N>-tools/release/<name>
func (l *Layout) Tool(c types.Compiler, name string) (string, error) {
	return l.existing(filepath.Join(l.toolsDir(c), c.Host.Exe(name)), errors.ErrToolNotFound, name)
}

// CompilerPath returns <sysroot>/bin/rustc
func (l *Layout) CompilerPath(c types.Compiler) (string, error) {
	return l.existing(filepath.Join(l.Sysroot(c), "bin", c.Host.Exe("rustc")), errors.ErrToolNotFound, "rustc")
}

// Rustdoc returns <sysroot>/bin/rustdoc
func (l *Layout) Rustdoc(c types.Compiler) (string, error) {
	return l.existing(filepath.Join(l.Sysroot(c), "bin", c.Host.Exe("rustdoc")), errors.ErrToolNotFound, "rustdoc")
}

// RustcLibdir returns <sysroot>/bin on Windows hosts and <sysroot>/lib elsewhere
func (l *Layout) RustcLibdir(c types.Compiler) (string, error) {
	dir := "lib"
	if c.Host.IsWindows() {
		dir = "bin"
	}
	return l.existing(filepath.Join(l.Sysroot(c), dir), errors.ErrLibdirNotFound, "rustc libdir")
}

// SysrootLibdir returns <sysroot>/lib/rustlib/<target>/lib
func (l *Layout) SysrootLibdir(c types.Compiler, target types.Triple) (string, error) {
	dir := filepath.Join(l.Sysroot(c), "lib", "rustlib", string(target), "lib")
	return l.existing(dir, errors.ErrLibdirNotFound, "sysroot libdir")
}

// LLVMFileCheck returns <llvm-root>/bin/FileCheck
func (l *Layout) LLVMFileCheck(build types.Triple) (string, error) {
	return l.existing(filepath.Join(l.llvmRoot, "bin", build.Exe(fileCheckName)), errors.ErrToolNotFound, fileCheckName)
}

// TestHelpersOut returns <out>/<target>/native/rust-test-helpers.
// The directory is populated by the harness build step, so it is not checked.
func (l *Layout) TestHelpersOut(target types.Triple) string {
	return filepath.Join(l.outDir, string(target), "native", testHelpersDir)
}

func (l *Layout) existing(path string, code errors.ErrorCode, what string) (string, error) {
	if _, err := l.fs.Stat(path); err != nil {
		l.logger.Debug().Str("path", path).Str("artifact", what).Msg("Artifact not found")
		return "", errors.Wrapf(err, code, "%s not found at %s", what, path).
			WithDetail("path", path).
			WithDetail("artifact", what)
	}
	l.logger.Trace().Str("path", path).Str("artifact", what).Msg("Resolved artifact")
	return path, nil
}
