package testutil

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/types"
)

// FakeResolver resolves every artifact under Root without touching a
// filesystem. Names listed in Missing fail with the matching error code:
// tool names, "rustc", "rustdoc", "FileCheck", "rustc-libdir", "sysroot-libdir".
type FakeResolver struct {
	Root    string
	Missing map[string]bool
}

// NewFakeResolver creates a FakeResolver rooted at root
func NewFakeResolver(root string, missing ...string) *FakeResolver {
	m := make(map[string]bool, len(missing))
	for _, name := range missing {
		m[name] = true
	}
	return &FakeResolver{Root: root, Missing: m}
}

func (r *FakeResolver) check(name string, code errors.ErrorCode, path string) (string, error) {
	if r.Missing[name] {
		return "", errors.Newf(code, "%s not found at %s", name, path).WithDetail("path", path)
	}
	return path, nil
}

func (r *FakeResolver) Sysroot(c types.Compiler) string {
	return filepath.Join(r.Root, string(c.Host), fmt.Sprintf("stage%d", c.Stage))
}

func (r *FakeResolver) Tool(c types.Compiler, name string) (string, error) {
	return r.check(name, errors.ErrToolNotFound, filepath.Join(r.Root, "tools", fmt.Sprintf("stage%d", c.Stage), string(c.Host), name))
}

func (r *FakeResolver) CompilerPath(c types.Compiler) (string, error) {
	return r.check("rustc", errors.ErrToolNotFound, filepath.Join(r.Sysroot(c), "bin", "rustc"))
}

func (r *FakeResolver) Rustdoc(c types.Compiler) (string, error) {
	return r.check("rustdoc", errors.ErrToolNotFound, filepath.Join(r.Sysroot(c), "bin", "rustdoc"))
}

func (r *FakeResolver) RustcLibdir(c types.Compiler) (string, error) {
	return r.check("rustc-libdir", errors.ErrLibdirNotFound, filepath.Join(r.Sysroot(c), "lib"))
}

func (r *FakeResolver) SysrootLibdir(c types.Compiler, target types.Triple) (string, error) {
	return r.check("sysroot-libdir", errors.ErrLibdirNotFound, filepath.Join(r.Sysroot(c), "lib", "rustlib", string(target), "lib"))
}

func (r *FakeResolver) LLVMFileCheck(build types.Triple) (string, error) {
	return r.check("FileCheck", errors.ErrToolNotFound, filepath.Join(r.Root, string(build), "llvm", "bin", "FileCheck"))
}

func (r *FakeResolver) TestHelpersOut(target types.Triple) string {
	return filepath.Join(r.Root, string(target), "native", "rust-test-helpers")
}
