package check

import (
	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Step is a named compiletest run of one mode over one suite
type Step struct {
	Name  string
	Mode  types.Mode
	Suite types.Suite
}

// debuginfoStep picks its mode from the target at lookup time
const debuginfoStep = "check-debuginfo"

var catalog = []Step{
	{"check-rpass", types.ModeRunPass, types.SuiteRunPass},
	{"check-cfail", types.ModeCompileFail, types.SuiteCompileFail},
	{"check-pfail", types.ModeParseFail, types.SuiteParseFail},
	{"check-rfail", types.ModeRunFail, types.SuiteRunFail},
	{"check-rpass-valgrind", types.ModeRunPassValgrind, types.SuiteRunPassValgrind},
	{"check-codegen", types.ModeCodegen, types.SuiteCodegen},
	{"check-codegen-units", types.ModeCodegenUnits, types.SuiteCodegenUnits},
	{"check-incremental", types.ModeIncremental, types.SuiteIncremental},
	{"check-ui", types.ModeUI, types.SuiteUI},
	{"check-mir-opt", types.ModeMirOpt, types.SuiteMirOpt},
	{"check-rustdoc", types.ModeRustdoc, types.SuiteRustdoc},
	{"check-pretty", types.ModePretty, types.SuitePretty},
	{"check-rpass-full", types.ModeRunPass, types.SuiteRunPassFulldeps},
	{"check-cfail-full", types.ModeCompileFail, types.SuiteCompileFailFulldeps},
	{"check-rfail-full", types.ModeRunFail, types.SuiteRunFailFulldeps},
	{debuginfoStep, types.ModeDebugInfoGdb, types.SuiteDebugInfo},
}

// Steps returns every catalog step in its default run order, with the
// debuginfo mode chosen for target
func Steps(target types.Triple) []Step {
	out := make([]Step, len(catalog))
	for i, s := range catalog {
		out[i] = forTarget(s, target)
	}
	return out
}

// StepNames returns every step name in default run order
func StepNames() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}

// LookupStep finds a step by name
func LookupStep(name string, target types.Triple) (Step, error) {
	for _, s := range catalog {
		if s.Name == name {
			return forTarget(s, target), nil
		}
	}
	return Step{}, errors.Newf(errors.ErrInvalidInput, "unknown check step %q", name).
		WithDetail("step", name)
}

// MatchSteps returns the steps whose name matches pattern, in catalog
// order. Patterns use doublestar syntax, so "check-*-full" selects the
// three fulldeps steps; a plain name matches only itself.
func MatchSteps(pattern string, target types.Triple) ([]Step, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid step pattern %q", pattern).
			WithDetail("step", pattern)
	}
	var out []Step
	for _, s := range catalog {
		if ok, _ := doublestar.Match(pattern, s.Name); ok {
			out = append(out, forTarget(s, target))
		}
	}
	if len(out) == 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown check step %q", pattern).
			WithDetail("step", pattern)
	}
	return out, nil
}

// apple targets debug with lldb, everything else with gdb
func forTarget(s Step, target types.Triple) Step {
	if s.Name == debuginfoStep && target.IsApple() {
		s.Mode = types.ModeDebugInfoLldb
	}
	return s
}
