package invocation

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/logging"
	"github.com/arthur-debert/stagecheck/pkg/toolchain"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Builder
type Options struct {
	Context  BuildContext
	Resolver toolchain.Resolver

	// Defaults nil means DefaultDefaults
	Defaults *Defaults

	// Env is read for the inherited PATH; nil means the process environment
	Env EnvSource

	// GOOS selects the search-path separator; empty means runtime.GOOS
	GOOS string

	Logger *zerolog.Logger
}

// Builder builds invocations for the three harness tools
type Builder struct {
	ctx      BuildContext
	resolver toolchain.Resolver
	defaults Defaults
	env      EnvSource
	goos     string
	logger   zerolog.Logger
}

// New creates a Builder
func New(opts Options) *Builder {
	defaults := DefaultDefaults()
	if opts.Defaults != nil {
		defaults = *opts.Defaults
	}
	env := opts.Env
	if env == nil {
		env = OSEnv
	}
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	logger := logging.GetLogger("invocation")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Builder{
		ctx:      opts.Context,
		resolver: opts.Resolver,
		defaults: defaults,
		env:      env,
		goos:     goos,
		logger:   logger,
	}
}

// Context returns the build context the builder was created with
func (b *Builder) Context() BuildContext {
	return b.ctx
}

// Build dispatches on the request kind
func (b *Builder) Build(req types.TestRequest) (types.Invocation, error) {
	if err := req.Validate(); err != nil {
		return types.Invocation{}, err
	}
	switch req.Kind {
	case types.KindLinkCheck:
		return b.LinkCheck(req.Compiler())
	case types.KindCargoTest:
		return b.CargoTest(req.Compiler())
	case types.KindCompiletest:
		return b.Compiletest(req.Compiler(), req.Target, req.Mode, req.Suite)
	default:
		return types.Invocation{}, errors.Newf(errors.ErrInvalidInput, "unknown test kind %q", req.Kind)
	}
}

// LinkCheck runs the link checker over the host's generated documentation
func (b *Builder) LinkCheck(c types.Compiler) (types.Invocation, error) {
	tool, err := b.resolver.Tool(c, types.KindLinkCheck.Tool())
	if err != nil {
		return types.Invocation{}, err
	}
	return types.Invocation{
		Program: tool,
		Args:    []string{b.ctx.Paths.DocDir(c.Host)},
	}, nil
}

// CargoTest runs the package manager's test suite against the binary
// under test. The staged compiler is found through PATH rather than a
// flag because that suite asserts the compiler is invoked as "rustc".
func (b *Builder) CargoTest(c types.Compiler) (types.Invocation, error) {
	tool, err := b.resolver.Tool(c, types.KindCargoTest.Tool())
	if err != nil {
		return types.Invocation{}, err
	}
	if b.ctx.Cargo == "" {
		return types.Invocation{}, errors.New(errors.ErrConfigValid, "no cargo binary configured for cargotest")
	}

	binDir := filepath.Join(b.resolver.Sysroot(c), "bin")
	env, err := ComposeSearchPath(b.env, b.goos, binDir)
	if err != nil {
		return types.Invocation{}, err
	}
	b.logger.Debug().Str("bin", binDir).Msg("Prepended staged compiler to search path")

	return types.Invocation{
		Program: tool,
		Args:    []string{b.ctx.Cargo},
		Env:     env,
	}, nil
}

// Compiletest builds the conformance harness invocation for one mode and suite
func (b *Builder) Compiletest(c types.Compiler, target types.Triple, mode types.Mode, suite types.Suite) (types.Invocation, error) {
	tool, err := b.resolver.Tool(c, types.KindCompiletest.Tool())
	if err != nil {
		return types.Invocation{}, err
	}
	compileLib, err := b.resolver.RustcLibdir(c)
	if err != nil {
		return types.Invocation{}, err
	}
	runLib, err := b.resolver.SysrootLibdir(c, target)
	if err != nil {
		return types.Invocation{}, err
	}
	rustc, err := b.resolver.CompilerPath(c)
	if err != nil {
		return types.Invocation{}, err
	}
	rustdoc, err := b.resolver.Rustdoc(c)
	if err != nil {
		return types.Invocation{}, err
	}
	filecheck, err := b.resolver.LLVMFileCheck(b.ctx.Build)
	if err != nil {
		return types.Invocation{}, err
	}

	p := b.ctx.Paths
	linkflag := "-Lnative=" + b.resolver.TestHelpersOut(target)

	args := []string{
		"--compile-lib-path", compileLib,
		"--run-lib-path", runLib,
		"--rustc-path", rustc,
		"--rustdoc-path", rustdoc,
		"--src-base", p.SuiteSrc(suite),
		"--aux-base", p.AuxiliaryDir(),
		"--build-base", p.BuildBase(c.Host, suite),
		"--stage-id", StageID(c.Stage, target),
		"--mode", string(mode),
		"--target", string(target),
		"--host", string(c.Host),
		"--llvm-bin-path", filepath.Dir(filecheck),
		"--host-rustcflags", b.defaults.HostRustcflags,
		"--target-rustcflags", b.defaults.HostRustcflags + " " + linkflag,
		"--android-cross-path", b.defaults.AndroidCrossPath,
		"--python", b.defaults.Python,
	}
	args = append(args, b.ctx.Flags.Args...)
	if b.ctx.Verbose() {
		args = append(args, "--verbose")
	}

	return types.Invocation{Program: tool, Args: args}, nil
}

// StageID is the --stage-id value compiletest keys its build output on
func StageID(stage uint32, target types.Triple) string {
	return fmt.Sprintf("stage%d-%s", stage, target)
}
