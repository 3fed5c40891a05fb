package stagecheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/stagecheck/pkg/check"
	"github.com/arthur-debert/stagecheck/pkg/config"
	"github.com/arthur-debert/stagecheck/pkg/invocation"
	"github.com/arthur-debert/stagecheck/pkg/logging"
	"github.com/arthur-debert/stagecheck/pkg/paths"
	"github.com/arthur-debert/stagecheck/pkg/runner"
	"github.com/arthur-debert/stagecheck/pkg/style"
	"github.com/arthur-debert/stagecheck/pkg/toolchain"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/arthur-debert/stagecheck/pkg/ui"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags of the root command
type globalOptions struct {
	verbosity  int
	configFile string
	dryRun     bool
	stage      uint32
	host       string
	src        string
	out        string
	color      string
}

// session is everything a command needs to build and run invocations
type session struct {
	cfg     *config.Config
	paths   paths.Paths
	builder *invocation.Builder
	checker *check.Checker
	painter style.Painter
	stage   uint32
	host    types.Triple
}

func (s *session) compiler() types.Compiler {
	return types.NewCompiler(s.stage, s.host)
}

// newSession loads configuration and wires the builder, runner and
// checker. passthrough is handed to compiletest.
func newSession(cmd *cobra.Command, opts *globalOptions, passthrough []string) (*session, error) {
	logger := logging.GetLogger("cli")

	candidate := opts.src
	if candidate == "" {
		root, _, err := paths.FindSourceRoot()
		if err != nil {
			return nil, err
		}
		candidate = root
	}

	overrides := map[string]interface{}{}
	if opts.src != "" {
		overrides["build.src"] = opts.src
	}
	if opts.out != "" {
		overrides["build.out"] = opts.out
	}
	if opts.color != "" {
		overrides["output.color"] = opts.color
	}

	cfg, err := config.Load(config.Options{
		File: opts.configFile,
		Search: []string{
			filepath.Join(paths.ExpandHome(candidate), paths.ConfigFileName),
			paths.UserConfigFilePath(),
		},
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	src := cfg.Build.Src
	if src == "" {
		src = candidate
	}
	p, err := paths.New(src, cfg.Build.Out)
	if err != nil {
		return nil, err
	}
	if opts.src == "" && cfg.Build.Src == "" && p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.SrcDir())
	}

	host := types.Triple(opts.host)
	if host == "" {
		host = cfg.BuildTriple()
	}

	resolver := toolchain.NewLayout(toolchain.LayoutOptions{
		OutDir:   p.OutDir(),
		Build:    cfg.BuildTriple(),
		LLVMRoot: cfg.Build.LLVMRoot,
	})

	defaults := cfg.Defaults()
	builder := invocation.New(invocation.Options{
		Context: invocation.BuildContext{
			Paths:         p,
			Build:         cfg.BuildTriple(),
			Cargo:         cfg.Build.Cargo,
			ConfigVerbose: cfg.Build.Verbose,
			Flags: invocation.Flags{
				Verbose: opts.verbosity > 0,
				Args:    passthrough,
			},
		},
		Resolver: resolver,
		Defaults: &defaults,
	})

	painter := style.NewPainter(styled(cmd, cfg.ColorMode()))
	r := runner.New(runner.Options{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		DryRun: opts.dryRun,
	})

	logger.Debug().
		Str("src", p.SrcDir()).
		Str("out", p.OutDir()).
		Str("host", string(host)).
		Uint32("stage", opts.stage).
		Bool("dry_run", opts.dryRun).
		Msg("Session ready")

	return &session{
		cfg:     cfg,
		paths:   p,
		builder: builder,
		checker: check.New(check.Options{
			Builder: builder,
			Runner:  r,
			Out:     cmd.OutOrStdout(),
			Painter: painter,
		}),
		painter: painter,
		stage:   opts.stage,
		host:    host,
	}, nil
}

// styled reports whether progress lines written by cmd should be styled
func styled(cmd *cobra.Command, mode ui.ColorMode) bool {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return mode.Styled(f)
	}
	return mode == ui.ColorAlways
}

// splitPassthrough separates positional args from those after "--"
func splitPassthrough(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}
