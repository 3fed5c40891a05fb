package toolchain_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/filesystem"
	"github.com/arthur-debert/stagecheck/pkg/toolchain"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const out = "/build"

func newLayout(t *testing.T, build types.Triple, llvmRoot string, files ...string) *toolchain.Layout {
	t.Helper()
	fsys, _, err := filesystem.NewMemory(files...)
	require.NoError(t, err)
	return toolchain.NewLayout(toolchain.LayoutOptions{
		OutDir:   out,
		Build:    build,
		LLVMRoot: llvmRoot,
		FS:       fsys,
	})
}

func TestLayoutResolvesLinuxStage(t *testing.T) {
	c := types.NewCompiler(1, "x86_64-linux")
	l := newLayout(t, "x86_64-linux", "",
		"/build/x86_64-linux/stage1/bin/rustc",
		"/build/x86_64-linux/stage1/bin/rustdoc",
		"/build/x86_64-linux/stage1/lib/librustc_driver.so",
		"/build/x86_64-linux/stage1/lib/rustlib/x86_64-linux/lib/libstd.rlib",
		"/build/x86_64-linux/stage1-tools/release/compiletest",
		"/build/x86_64-linux/llvm/build/bin/FileCheck",
	)

	assert.Equal(t, filepath.Join(out, "x86_64-linux", "stage1"), l.Sysroot(c))

	got, err := l.CompilerPath(c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "x86_64-linux", "stage1", "bin", "rustc"), got)

	got, err = l.Rustdoc(c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "x86_64-linux", "stage1", "bin", "rustdoc"), got)

	got, err = l.RustcLibdir(c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "x86_64-linux", "stage1", "lib"), got)

	got, err = l.SysrootLibdir(c, "x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "x86_64-linux", "stage1", "lib", "rustlib", "x86_64-linux", "lib"), got)

	got, err = l.Tool(c, "compiletest")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "x86_64-linux", "stage1-tools", "release", "compiletest"), got)

	got, err = l.LLVMFileCheck("x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "x86_64-linux", "llvm", "build", "bin", "FileCheck"), got)

	assert.Equal(t, filepath.Join(out, "arm-linux", "native", "rust-test-helpers"), l.TestHelpersOut("arm-linux"))
}

func TestLayoutWindowsHost(t *testing.T) {
	c := types.NewCompiler(2, "x86_64-pc-windows-msvc")
	l := newLayout(t, "x86_64-pc-windows-msvc", "",
		"/build/x86_64-pc-windows-msvc/stage2/bin/rustc.exe",
		"/build/x86_64-pc-windows-msvc/stage2-tools/release/cargotest.exe",
	)

	got, err := l.CompilerPath(c)
	require.NoError(t, err)
	assert.Equal(t, "rustc.exe", filepath.Base(got))

	got, err = l.RustcLibdir(c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "x86_64-pc-windows-msvc", "stage2", "bin"), got)

	got, err = l.Tool(c, "cargotest")
	require.NoError(t, err)
	assert.Equal(t, "cargotest.exe", filepath.Base(got))
}

func TestLayoutLLVMRootOverride(t *testing.T) {
	l := newLayout(t, "x86_64-linux", "/usr/lib/llvm-3.9", "/usr/lib/llvm-3.9/bin/FileCheck")

	got, err := l.LLVMFileCheck("x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/usr/lib/llvm-3.9", "bin", "FileCheck"), got)
}

func TestLayoutMissingArtifacts(t *testing.T) {
	c := types.NewCompiler(1, "x86_64-linux")
	l := newLayout(t, "x86_64-linux", "")

	tests := []struct {
		name string
		call func() (string, error)
		code errors.ErrorCode
	}{
		{"tool", func() (string, error) { return l.Tool(c, "linkchecker") }, errors.ErrToolNotFound},
		{"rustc", func() (string, error) { return l.CompilerPath(c) }, errors.ErrToolNotFound},
		{"rustdoc", func() (string, error) { return l.Rustdoc(c) }, errors.ErrToolNotFound},
		{"filecheck", func() (string, error) { return l.LLVMFileCheck("x86_64-linux") }, errors.ErrToolNotFound},
		{"rustc libdir", func() (string, error) { return l.RustcLibdir(c) }, errors.ErrLibdirNotFound},
		{"sysroot libdir", func() (string, error) { return l.SysrootLibdir(c, "x86_64-linux") }, errors.ErrLibdirNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			assert.Empty(t, got)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.NotEmpty(t, errors.GetErrorDetails(err)["path"])
		})
	}
}
