package stagecheck

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Run the test harnesses of a staged compiler build"
	MsgLinkcheckShort   = "Check links in the generated documentation"
	MsgLinkcheckLong    = "Run linkchecker over <out>/<host>/doc for the selected stage."
	MsgCargotestShort   = "Run the package manager's test suite against a stage"
	MsgCargotestLong    = "Run cargotest with the stage's bin directory first on PATH, so the compiler under test is found as rustc."
	MsgCompiletestShort = "Run one compiletest mode over one suite"
	MsgStepsShort       = "Run catalog compiletest steps"
	MsgPlanShort        = "Print the invocations a command would run"
	MsgConfigShort      = "Print the effective configuration"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgCompletionLong   = "Generate a completion script for bash, zsh, fish or powershell and write it to stdout."
	MsgManShort         = "Generate the man page"

	// Status messages
	MsgFallbackWarning = "Warning: no git repository found, using current directory as source root: %s\n"
	MsgStepItem        = "%-22s mode=%-18s suite=%s\n"
	MsgConfigSource    = "# loaded from %s\n"
	MsgErrorFormat     = "Error: %v"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrUnknownPlan = "unknown plan kind %q (want linkcheck, cargotest, compiletest or steps)"
	MsgErrMissingFlag = "--%s is required"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE); also passes --verbose to compiletest"
	MsgFlagConfig  = "Config file (default: stagecheck.toml in the source root, then the user config)"
	MsgFlagDryRun  = "Print the commands instead of running them"
	MsgFlagStage   = "Build stage of the compiler under test"
	MsgFlagHost    = "Host triple of the compiler under test (default: build.triple)"
	MsgFlagSrc     = "Source root (default: git repository root, else current directory)"
	MsgFlagOut     = "Build output root (default: <src>/build)"
	MsgFlagColor   = "Color output: auto, always or never"
	MsgFlagTarget  = "Target triple the tests are compiled for (default: host)"
	MsgFlagMode    = "Compiletest mode"
	MsgFlagSuite   = "Fixture suite under src/test"
	MsgFlagList    = "List the step catalog instead of running it"
	MsgFlagFormat  = "Output format: text, yaml or toml (default: output.format)"
	MsgFlagDefault = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/compiletest-long.txt
	msgCompiletestLongRaw string
	MsgCompiletestLong    = strings.TrimSpace(msgCompiletestLongRaw)

	//go:embed msgs/compiletest-example.txt
	msgCompiletestExampleRaw string
	MsgCompiletestExample    = strings.TrimRight(msgCompiletestExampleRaw, "\n")

	//go:embed msgs/steps-long.txt
	msgStepsLongRaw string
	MsgStepsLong    = strings.TrimSpace(msgStepsLongRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")
)
