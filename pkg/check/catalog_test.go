package check

import (
	"testing"

	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Steps("x86_64-linux") {
		assert.False(t, seen[s.Name], "duplicate step %s", s.Name)
		seen[s.Name] = true

		_, err := types.ParseMode(string(s.Mode))
		assert.NoError(t, err, s.Name)
		_, err = types.ParseSuite(string(s.Suite))
		assert.NoError(t, err, s.Name)
	}
	assert.Equal(t, len(catalog), len(StepNames()))
	assert.Equal(t, "check-rpass", StepNames()[0])
}

func TestDebuginfoModeFollowsTarget(t *testing.T) {
	s, err := LookupStep("check-debuginfo", "x86_64-unknown-linux-gnu")
	require.NoError(t, err)
	assert.Equal(t, types.ModeDebugInfoGdb, s.Mode)

	s, err = LookupStep("check-debuginfo", "x86_64-apple-darwin")
	require.NoError(t, err)
	assert.Equal(t, types.ModeDebugInfoLldb, s.Mode)
	assert.Equal(t, types.SuiteDebugInfo, s.Suite)

	// The catalog itself is never rewritten.
	assert.Equal(t, types.ModeDebugInfoGdb, catalog[len(catalog)-1].Mode)
}

func TestLookupStep(t *testing.T) {
	s, err := LookupStep("check-rpass-full", "x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, Step{"check-rpass-full", types.ModeRunPass, types.SuiteRunPassFulldeps}, s)

	_, err = LookupStep("check-nope", "x86_64-linux")
	assert.Error(t, err)
}

func TestProgressLine(t *testing.T) {
	assert.Equal(t, "Linkcheck stage2 (x86_64-linux)",
		ProgressLine(types.TestRequest{Kind: types.KindLinkCheck, Stage: 2, Host: "x86_64-linux"}))
	assert.Equal(t, "Cargotest stage0 (i686-linux)",
		ProgressLine(types.TestRequest{Kind: types.KindCargoTest, Stage: 0, Host: "i686-linux"}))
}

func TestMatchSteps(t *testing.T) {
	steps, err := MatchSteps("check-*-full", "x86_64-linux")
	require.NoError(t, err)

	var names []string
	for _, s := range steps {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"check-rpass-full", "check-cfail-full", "check-rfail-full"}, names)

	steps, err = MatchSteps("check-codegen", "x86_64-linux")
	require.NoError(t, err)
	require.Len(t, steps, 1, "a plain name does not match check-codegen-units")

	_, err = MatchSteps("check-[", "x86_64-linux")
	assert.Error(t, err)

	_, err = MatchSteps("lint-*", "x86_64-linux")
	assert.Error(t, err)
}
