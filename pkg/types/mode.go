package types

import (
	"github.com/arthur-debert/stagecheck/pkg/errors"
)

// Mode selects a conformance test category understood by compiletest.
// The string values are part of the harness's command-line contract.
type Mode string

const (
	ModeCompileFail     Mode = "compile-fail"
	ModeParseFail       Mode = "parse-fail"
	ModeRunFail         Mode = "run-fail"
	ModeRunPass         Mode = "run-pass"
	ModeRunPassValgrind Mode = "run-pass-valgrind"
	ModePretty          Mode = "pretty"
	ModeDebugInfoGdb    Mode = "debuginfo-gdb"
	ModeDebugInfoLldb   Mode = "debuginfo-lldb"
	ModeCodegen         Mode = "codegen"
	ModeCodegenUnits    Mode = "codegen-units"
	ModeIncremental     Mode = "incremental"
	ModeRustdoc         Mode = "rustdoc"
	ModeUI              Mode = "ui"
	ModeMirOpt          Mode = "mir-opt"
)

// AllModes lists every known mode
var AllModes = []Mode{
	ModeCompileFail, ModeParseFail, ModeRunFail, ModeRunPass, ModeRunPassValgrind,
	ModePretty, ModeDebugInfoGdb, ModeDebugInfoLldb, ModeCodegen, ModeCodegenUnits,
	ModeIncremental, ModeRustdoc, ModeUI, ModeMirOpt,
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode parses a compiletest mode name
func ParseMode(s string) (Mode, error) {
	for _, known := range AllModes {
		if string(known) == s {
			return known, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown compiletest mode %q", s).
		WithDetail("mode", s)
}
