package config

import (
	"runtime"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/invocation"
	"github.com/arthur-debert/stagecheck/pkg/render"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/arthur-debert/stagecheck/pkg/ui"
)

// Config is the effective stagecheck configuration
type Config struct {
	Build       BuildConfig       `koanf:"build" toml:"build"`
	Compiletest CompiletestConfig `koanf:"compiletest" toml:"compiletest"`
	Output      OutputConfig      `koanf:"output" toml:"output"`

	// Source is the config file that was loaded, empty if none
	Source string `koanf:"-" toml:"-"`
}

// BuildConfig describes the build tree under test
type BuildConfig struct {
	Triple   string `koanf:"triple" toml:"triple"`
	Src      string `koanf:"src" toml:"src"`
	Out      string `koanf:"out" toml:"out"`
	Cargo    string `koanf:"cargo" toml:"cargo"`
	Verbose  bool   `koanf:"verbose" toml:"verbose"`
	LLVMRoot string `koanf:"llvm_root" toml:"llvm_root"`
}

// CompiletestConfig holds the fixed compiletest arguments
type CompiletestConfig struct {
	Python           string `koanf:"python" toml:"python"`
	AndroidCrossPath string `koanf:"android_cross_path" toml:"android_cross_path"`
	HostRustcflags   string `koanf:"host_rustcflags" toml:"host_rustcflags"`
}

// OutputConfig controls how plans and progress are printed
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
	Color  string `koanf:"color" toml:"color"`
}

// BuildTriple returns the configured build triple
func (c *Config) BuildTriple() types.Triple {
	return types.Triple(c.Build.Triple)
}

// Defaults returns the compiletest defaults for the invocation builder
func (c *Config) Defaults() invocation.Defaults {
	return invocation.Defaults{
		Python:           c.Compiletest.Python,
		AndroidCrossPath: c.Compiletest.AndroidCrossPath,
		HostRustcflags:   c.Compiletest.HostRustcflags,
	}
}

// Format returns the parsed output format
func (c *Config) Format() render.Format {
	f, _ := render.ParseFormat(c.Output.Format)
	return f
}

// ColorMode returns the parsed color mode
func (c *Config) ColorMode() ui.ColorMode {
	m, _ := ui.ParseColorMode(c.Output.Color)
	return m
}

// Validate checks values that cannot be checked by decoding alone
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format")
	}
	if _, err := ui.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.color")
	}
	if c.Build.Triple == "" {
		return errors.New(errors.ErrConfigValid, "build.triple is empty")
	}
	return nil
}

var archNames = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "arm",
	"ppc64le": "powerpc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64gc",
}

var osSuffixes = map[string]string{
	"linux":   "unknown-linux-gnu",
	"darwin":  "apple-darwin",
	"windows": "pc-windows-msvc",
	"freebsd": "unknown-freebsd",
	"netbsd":  "unknown-netbsd",
	"openbsd": "unknown-openbsd",
}

// HostTriple maps a Go platform onto the matching target triple.
// Unknown platforms fall back to "<goarch>-unknown-<goos>".
func HostTriple(goos, goarch string) types.Triple {
	arch, ok := archNames[goarch]
	if !ok {
		arch = goarch
	}
	suffix, ok := osSuffixes[goos]
	if !ok {
		suffix = "unknown-" + goos
	}
	return types.Triple(arch + "-" + suffix)
}

// DefaultTriple is the host triple of the running binary
func DefaultTriple() types.Triple {
	return HostTriple(runtime.GOOS, runtime.GOARCH)
}
