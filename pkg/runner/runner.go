// Package runner executes built invocations as child processes.
//
// A run blocks until the child exits. Output streams straight through to
// the configured writers; nothing is captured and no timeout is applied.
// Any failure to start or non-zero exit is returned as a fatal error.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	checkerrors "github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/logging"
	"github.com/arthur-debert/stagecheck/pkg/render"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/rs/zerolog"
)

// Runner executes an invocation to completion
type Runner interface {
	Run(inv types.Invocation) error
}

// Options configures an ExecRunner
type Options struct {
	// Stdout and Stderr receive the child's output; nil means os.Stdout and os.Stderr
	Stdout io.Writer
	Stderr io.Writer

	// DryRun prints the command line to Stdout instead of running it
	DryRun bool

	Logger *zerolog.Logger
}

// ExecRunner runs invocations with os/exec
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
	dryRun bool
	logger zerolog.Logger
}

// New creates an ExecRunner
func New(opts Options) *ExecRunner {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := logging.GetLogger("runner")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &ExecRunner{
		stdout: stdout,
		stderr: stderr,
		dryRun: opts.DryRun,
		logger: logger,
	}
}

// Run executes inv and waits for it
func (r *ExecRunner) Run(inv types.Invocation) error {
	if inv.Program == "" {
		return checkerrors.New(checkerrors.ErrInvalidInput, "invocation has no program")
	}

	logging.LogCommand(r.logger, inv.Program, inv.Args)

	if r.dryRun {
		r.logger.Info().Str("program", inv.Program).Msg("Dry run mode - command would be executed")
		_, err := fmt.Fprintln(r.stdout, render.CommandLine(inv))
		return err
	}

	// #nosec G204 -- program and args come from resolved toolchain paths and user flags.
	cmd := exec.Command(inv.Program, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = Environ(os.Environ(), inv)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Start(); err != nil {
		r.logger.Error().Err(err).Str("program", inv.Program).Msg("Failed to start command")
		return checkerrors.Wrapf(err, checkerrors.ErrProcessStart, "failed to run %s", inv.Program).
			WithDetail("program", inv.Program)
	}

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Error().
			Err(err).
			Str("program", inv.Program).
			Strs("args", inv.Args).
			Int("exit_code", exitCode).
			Msg("Command execution failed")
		return checkerrors.Wrapf(err, checkerrors.ErrProcessFailed, "command did not execute successfully: %s", inv.Program).
			WithDetail("program", inv.Program).
			WithDetail("exit_code", exitCode)
	}

	r.logger.Debug().Str("program", inv.Program).Msg("Command completed")
	return nil
}

// Environ returns base followed by inv's overrides in sorted key order.
// os/exec keeps the last value of a duplicated key, so overrides win.
func Environ(base []string, inv types.Invocation) []string {
	env := make([]string, 0, len(base)+len(inv.Env))
	env = append(env, base...)
	for _, k := range inv.EnvKeys() {
		env = append(env, k+"="+inv.Env[k])
	}
	return env
}
