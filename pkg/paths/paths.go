// Package paths provides the source-tree and output-tree layout the
// test harnesses are pointed at.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/mitchellh/go-homedir"
)

// Fixed layout names. These mirror the build system's own layout and are
// part of the contract with the harness tools.
const (
	// AppName names stagecheck's files in the source root and XDG dirs
	AppName = "stagecheck"

	// ConfigFileName is the per-source-tree configuration file
	ConfigFileName = "stagecheck.toml"

	// DefaultOutDir is the output directory relative to the source root
	DefaultOutDir = "build"

	// TestRoot is the fixture root relative to the source root
	TestRoot = "src/test"

	// DocDir is the generated documentation directory under <out>/<host>
	DocDir = "doc"

	// TestDir is the harness build directory under <out>/<host>
	TestDir = "test"
)

// Paths resolves the directories a test invocation is pointed at
type Paths interface {
	SrcDir() string
	OutDir() string
	UsedFallback() bool
	HostDir(host types.Triple) string
	DocDir(host types.Triple) string
	TestDir(host types.Triple) string
	SuiteSrc(suite types.Suite) string
	AuxiliaryDir() string
	BuildBase(host types.Triple, suite types.Suite) string
	ConfigFilePath() string
	UserConfigFilePath() string
}

type paths struct {
	srcDir string
	outDir string

	// usedFallback indicates the source root fell back to cwd
	usedFallback bool
}

// New creates a Paths instance. An empty srcDir is discovered with
// FindSourceRoot; an empty outDir defaults to <src>/build.
func New(srcDir, outDir string) (Paths, error) {
	p := &paths{}

	if srcDir == "" {
		root, usedFallback, err := FindSourceRoot()
		if err != nil {
			return nil, err
		}
		p.srcDir = root
		p.usedFallback = usedFallback
	} else {
		p.srcDir = expandHome(srcDir)
	}

	absSrc, err := filepath.Abs(p.srcDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "failed to get absolute path for source root")
	}
	p.srcDir = absSrc

	if outDir == "" {
		p.outDir = filepath.Join(p.srcDir, DefaultOutDir)
	} else {
		absOut, err := filepath.Abs(expandHome(outDir))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "failed to get absolute path for output root")
		}
		p.outDir = absOut
	}

	return p, nil
}

// FindSourceRoot determines the source root:
// 1. Git repository root (found via 'git rev-parse --show-toplevel')
// 2. Current working directory (fallback)
func FindSourceRoot() (string, bool, error) {
	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrConfigValid, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrConfigValid, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory. ~user forms and
// lookup failures leave path unchanged.
func expandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandHome expands a leading ~ in path
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) SrcDir() string {
	return p.srcDir
}

func (p *paths) OutDir() string {
	return p.outDir
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// HostDir returns <out>/<host>
func (p *paths) HostDir(host types.Triple) string {
	return filepath.Join(p.outDir, string(host))
}

// DocDir returns the generated documentation directory for host
func (p *paths) DocDir(host types.Triple) string {
	return filepath.Join(p.HostDir(host), DocDir)
}

// TestDir returns the harness build root for host
func (p *paths) TestDir(host types.Triple) string {
	return filepath.Join(p.HostDir(host), TestDir)
}

// SuiteSrc returns <src>/src/test/<suite>
func (p *paths) SuiteSrc(suite types.Suite) string {
	return filepath.Join(p.srcDir, filepath.FromSlash(TestRoot), string(suite))
}

// AuxiliaryDir returns <src>/src/test/auxiliary, shared by all suites
func (p *paths) AuxiliaryDir() string {
	return filepath.Join(p.srcDir, filepath.FromSlash(TestRoot), types.AuxiliaryDir)
}

// BuildBase returns <out>/<host>/test/<suite>
func (p *paths) BuildBase(host types.Triple, suite types.Suite) string {
	return filepath.Join(p.TestDir(host), string(suite))
}

// ConfigFilePath returns the per-source-tree configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.srcDir, ConfigFileName)
}

// UserConfigFilePath returns the user configuration file under XDG_CONFIG_HOME
func (p *paths) UserConfigFilePath() string {
	return UserConfigFilePath()
}

// UserConfigFilePath returns $XDG_CONFIG_HOME/stagecheck/config.toml
func UserConfigFilePath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, AppName, "config.toml")
}
