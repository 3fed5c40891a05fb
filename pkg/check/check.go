package check

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/stagecheck/pkg/logging"
	"github.com/arthur-debert/stagecheck/pkg/runner"
	"github.com/arthur-debert/stagecheck/pkg/style"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/rs/zerolog"
)

// Builder builds the invocation for a request
type Builder interface {
	Build(req types.TestRequest) (types.Invocation, error)
}

// Options configures a Checker
type Options struct {
	Builder Builder
	Runner  runner.Runner

	// Out receives progress lines; nil means os.Stdout
	Out io.Writer

	Painter style.Painter
	Logger  *zerolog.Logger
}

// Checker runs harness invocations for a built stage
type Checker struct {
	builder Builder
	runner  runner.Runner
	out     io.Writer
	painter style.Painter
	logger  zerolog.Logger
}

// New creates a Checker
func New(opts Options) *Checker {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := logging.GetLogger("check")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Checker{
		builder: opts.Builder,
		runner:  opts.Runner,
		out:     out,
		painter: opts.Painter,
		logger:  logger,
	}
}

// Linkcheck checks the links in the generated documentation for host
func (c *Checker) Linkcheck(stage uint32, host types.Triple) error {
	return c.Run(types.TestRequest{Kind: types.KindLinkCheck, Stage: stage, Host: host})
}

// Cargotest runs the package manager's test suite against the staged compiler
func (c *Checker) Cargotest(stage uint32, host types.Triple) error {
	return c.Run(types.TestRequest{Kind: types.KindCargoTest, Stage: stage, Host: host})
}

// Compiletest runs one compiletest mode over one suite
func (c *Checker) Compiletest(comp types.Compiler, target types.Triple, mode types.Mode, suite types.Suite) error {
	return c.Run(types.TestRequest{
		Kind:   types.KindCompiletest,
		Stage:  comp.Stage,
		Host:   comp.Host,
		Target: target,
		Mode:   mode,
		Suite:  suite,
	})
}

// Run prints the progress line for req, builds its invocation and runs it
func (c *Checker) Run(req types.TestRequest) error {
	c.progress(req)

	inv, err := c.builder.Build(req)
	if err != nil {
		c.logger.Error().Err(err).Str("kind", string(req.Kind)).Msg("Failed to build invocation")
		return err
	}

	done := logging.LogOperationStart(c.logger, string(req.Kind))
	defer done()

	return c.runner.Run(inv)
}

// RunSteps runs the named catalog steps in order, stopping at the first
// failure. Names may be glob patterns; no names means every step.
func (c *Checker) RunSteps(comp types.Compiler, target types.Triple, names ...string) error {
	steps, err := resolveSteps(target, names)
	if err != nil {
		return err
	}

	for _, s := range steps {
		c.logger.Info().Str("step", s.Name).Str("mode", string(s.Mode)).Str("suite", string(s.Suite)).Msg("Running step")
		if err := c.Compiletest(comp, target, s.Mode, s.Suite); err != nil {
			c.logger.Error().Err(err).Str("step", s.Name).Msg("Step failed")
			return err
		}
	}
	return nil
}

// Plan builds invocations for reqs without running anything
func (c *Checker) Plan(reqs ...types.TestRequest) ([]types.Invocation, error) {
	invs := make([]types.Invocation, 0, len(reqs))
	for _, req := range reqs {
		inv, err := c.builder.Build(req)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, nil
}

// StepRequests returns the compiletest requests for the named steps
func StepRequests(comp types.Compiler, target types.Triple, names ...string) ([]types.TestRequest, error) {
	steps, err := resolveSteps(target, names)
	if err != nil {
		return nil, err
	}
	reqs := make([]types.TestRequest, 0, len(steps))
	for _, s := range steps {
		reqs = append(reqs, types.TestRequest{
			Kind:   types.KindCompiletest,
			Stage:  comp.Stage,
			Host:   comp.Host,
			Target: target,
			Mode:   s.Mode,
			Suite:  s.Suite,
		})
	}
	return reqs, nil
}

func resolveSteps(target types.Triple, names []string) ([]Step, error) {
	if len(names) == 0 {
		return Steps(target), nil
	}
	steps := make([]Step, 0, len(names))
	for _, name := range names {
		matched, err := MatchSteps(name, target)
		if err != nil {
			return nil, err
		}
		steps = append(steps, matched...)
	}
	return steps, nil
}

// ProgressLine is the banner printed before a request runs
func ProgressLine(req types.TestRequest) string {
	switch req.Kind {
	case types.KindLinkCheck:
		return fmt.Sprintf("Linkcheck stage%d (%s)", req.Stage, req.Host)
	case types.KindCargoTest:
		return fmt.Sprintf("Cargotest stage%d (%s)", req.Stage, req.Host)
	default:
		return fmt.Sprintf("Check compiletest suite=%s mode=%s stage%d (%s -> %s)",
			req.Suite, req.Mode, req.Stage, req.Host, req.Target)
	}
}

func (c *Checker) progress(req types.TestRequest) {
	fmt.Fprintln(c.out, c.painter.Progress(ProgressLine(req)))
}
