package testutil

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/stagecheck/pkg/types"
)

// StageFiles lists every artifact toolchain.Layout checks for one stage,
// host, target and build triple under out.
func StageFiles(out string, c types.Compiler, target, build types.Triple, tools ...string) []string {
	sysroot := filepath.Join(out, string(c.Host), fmt.Sprintf("stage%d", c.Stage))
	libdir := "lib"
	if c.Host.IsWindows() {
		libdir = "bin"
	}
	files := []string{
		filepath.Join(sysroot, "bin", c.Host.Exe("rustc")),
		filepath.Join(sysroot, "bin", c.Host.Exe("rustdoc")),
		filepath.Join(sysroot, libdir, ".keep"),
		filepath.Join(sysroot, "lib", "rustlib", string(target), "lib", ".keep"),
		filepath.Join(out, string(build), "llvm", "build", "bin", build.Exe("FileCheck")),
	}
	toolsDir := filepath.Join(out, string(c.Host), fmt.Sprintf("stage%d-tools", c.Stage), "release")
	for _, tool := range tools {
		files = append(files, filepath.Join(toolsDir, c.Host.Exe(tool)))
	}
	return files
}
