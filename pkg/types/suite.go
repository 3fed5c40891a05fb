package types

import (
	"github.com/arthur-debert/stagecheck/pkg/errors"
)

// Suite names a fixture directory under src/test
type Suite string

const (
	SuiteRunPass             Suite = "run-pass"
	SuiteRunPassFulldeps     Suite = "run-pass-fulldeps"
	SuiteRunPassValgrind     Suite = "run-pass-valgrind"
	SuiteCompileFail         Suite = "compile-fail"
	SuiteCompileFailFulldeps Suite = "compile-fail-fulldeps"
	SuiteParseFail           Suite = "parse-fail"
	SuiteRunFail             Suite = "run-fail"
	SuiteRunFailFulldeps     Suite = "run-fail-fulldeps"
	SuitePretty              Suite = "pretty"
	SuiteDebugInfo           Suite = "debuginfo"
	SuiteCodegen             Suite = "codegen"
	SuiteCodegenUnits        Suite = "codegen-units"
	SuiteIncremental         Suite = "incremental"
	SuiteRustdoc             Suite = "rustdoc"
	SuiteUI                  Suite = "ui"
	SuiteMirOpt              Suite = "mir-opt"
)

// AuxiliaryDir is the shared auxiliary fixture directory. It is not a suite.
const AuxiliaryDir = "auxiliary"

// AllSuites lists every known suite
var AllSuites = []Suite{
	SuiteRunPass, SuiteRunPassFulldeps, SuiteRunPassValgrind,
	SuiteCompileFail, SuiteCompileFailFulldeps, SuiteParseFail,
	SuiteRunFail, SuiteRunFailFulldeps, SuitePretty, SuiteDebugInfo,
	SuiteCodegen, SuiteCodegenUnits, SuiteIncremental, SuiteRustdoc,
	SuiteUI, SuiteMirOpt,
}

func (s Suite) String() string {
	return string(s)
}

// ParseSuite parses a suite directory name
func ParseSuite(s string) (Suite, error) {
	for _, known := range AllSuites {
		if string(known) == s {
			return known, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown test suite %q", s).
		WithDetail("suite", s)
}
