package invocation_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/invocation"
	"github.com/arthur-debert/stagecheck/pkg/paths"
	"github.com/arthur-debert/stagecheck/pkg/testutil"
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	srcRoot = "/src"
	outRoot = "/out"
)

func fixedEnv(vars map[string]string) invocation.EnvSource {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func newBuilder(t *testing.T, ctx invocation.BuildContext, resolver *testutil.FakeResolver, goos string) *invocation.Builder {
	t.Helper()
	p, err := paths.New(srcRoot, outRoot)
	require.NoError(t, err)
	ctx.Paths = p
	if ctx.Build == "" {
		ctx.Build = "x86_64-linux"
	}
	return invocation.New(invocation.Options{
		Context:  ctx,
		Resolver: resolver,
		Env:      fixedEnv(map[string]string{"PATH": "/usr/bin"}),
		GOOS:     goos,
	})
}

func TestLinkCheck(t *testing.T) {
	b := newBuilder(t, invocation.BuildContext{}, testutil.NewFakeResolver(outRoot), "linux")

	inv, err := b.LinkCheck(types.NewCompiler(2, "x86_64-linux"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outRoot, "tools", "stage2", "x86_64-linux", "linkchecker"), inv.Program)
	assert.Equal(t, []string{filepath.Join(outRoot, "x86_64-linux", "doc")}, inv.Args)
	assert.Empty(t, inv.Env)
}

func TestCargoTest(t *testing.T) {
	ctx := invocation.BuildContext{Cargo: "/stage0/bin/cargo"}
	b := newBuilder(t, ctx, testutil.NewFakeResolver(outRoot), "linux")

	inv, err := b.CargoTest(types.NewCompiler(1, "x86_64-linux"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outRoot, "tools", "stage1", "x86_64-linux", "cargotest"), inv.Program)
	assert.Equal(t, []string{"/stage0/bin/cargo"}, inv.Args)
	assert.Equal(t, map[string]string{
		"PATH": filepath.Join(outRoot, "x86_64-linux", "stage1", "bin") + ":/usr/bin",
	}, inv.Env)
}

func TestCargoTestWithoutCargo(t *testing.T) {
	b := newBuilder(t, invocation.BuildContext{}, testutil.NewFakeResolver(outRoot), "linux")

	_, err := b.CargoTest(types.NewCompiler(1, "x86_64-linux"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestCargoTestUnsetPath(t *testing.T) {
	p, err := paths.New(srcRoot, outRoot)
	require.NoError(t, err)
	b := invocation.New(invocation.Options{
		Context:  invocation.BuildContext{Paths: p, Cargo: "/cargo"},
		Resolver: testutil.NewFakeResolver(outRoot),
		Env:      fixedEnv(nil),
		GOOS:     "linux",
	})

	_, err = b.CargoTest(types.NewCompiler(1, "x86_64-linux"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvUnset))
}

func compiletestRequest() types.TestRequest {
	return types.TestRequest{
		Kind:   types.KindCompiletest,
		Stage:  1,
		Host:   "x86_64-linux",
		Target: "x86_64-linux",
		Mode:   types.ModeUI,
		Suite:  types.SuiteUI,
	}
}

func TestCompiletestArgumentOrder(t *testing.T) {
	b := newBuilder(t, invocation.BuildContext{}, testutil.NewFakeResolver(outRoot), "linux")

	inv, err := b.Build(compiletestRequest())
	require.NoError(t, err)

	sysroot := filepath.Join(outRoot, "x86_64-linux", "stage1")
	want := []string{
		"--compile-lib-path", filepath.Join(sysroot, "lib"),
		"--run-lib-path", filepath.Join(sysroot, "lib", "rustlib", "x86_64-linux", "lib"),
		"--rustc-path", filepath.Join(sysroot, "bin", "rustc"),
		"--rustdoc-path", filepath.Join(sysroot, "bin", "rustdoc"),
		"--src-base", filepath.Join(srcRoot, "src", "test", "ui"),
		"--aux-base", filepath.Join(srcRoot, "src", "test", "auxiliary"),
		"--build-base", filepath.Join(outRoot, "x86_64-linux", "test", "ui"),
		"--stage-id", "stage1-x86_64-linux",
		"--mode", "ui",
		"--target", "x86_64-linux",
		"--host", "x86_64-linux",
		"--llvm-bin-path", filepath.Join(outRoot, "x86_64-linux", "llvm", "bin"),
		"--host-rustcflags", "-Crpath",
		"--target-rustcflags", "-Crpath -Lnative=" + filepath.Join(outRoot, "x86_64-linux", "native", "rust-test-helpers"),
		"--android-cross-path", "",
		"--python", "python",
	}
	assert.Equal(t, want, inv.Args)
	assert.Equal(t, filepath.Join(outRoot, "tools", "stage1", "x86_64-linux", "compiletest"), inv.Program)
	assert.Empty(t, inv.Env)
}

func TestCompiletestCrossTarget(t *testing.T) {
	b := newBuilder(t, invocation.BuildContext{}, testutil.NewFakeResolver(outRoot), "linux")

	req := compiletestRequest()
	req.Stage = 2
	req.Target = "arm-unknown-linux-gnueabihf"
	req.Mode = types.ModeRunPass
	req.Suite = types.SuiteRunPassFulldeps

	inv, err := b.Build(req)
	require.NoError(t, err)

	flag := func(name string) string {
		v, ok := inv.Flag(name)
		require.True(t, ok, name)
		return v
	}
	assert.Equal(t, "stage2-arm-unknown-linux-gnueabihf", flag("--stage-id"))
	assert.Equal(t, "arm-unknown-linux-gnueabihf", flag("--target"))
	assert.Equal(t, "x86_64-linux", flag("--host"))
	assert.Equal(t, filepath.Join(srcRoot, "src", "test", "run-pass-fulldeps"), flag("--src-base"))
	assert.Equal(t, filepath.Join(srcRoot, "src", "test", "auxiliary"), flag("--aux-base"))
	assert.Equal(t, filepath.Join(outRoot, "x86_64-linux", "test", "run-pass-fulldeps"), flag("--build-base"),
		"build base follows the host, not the target")
	assert.Contains(t, flag("--target-rustcflags"), filepath.Join(outRoot, "arm-unknown-linux-gnueabihf", "native"))
}

func TestCompiletestPassthroughAndVerbose(t *testing.T) {
	tests := []struct {
		name          string
		configVerbose bool
		flagVerbose   bool
		wantVerbose   bool
	}{
		{"neither", false, false, false},
		{"config only", true, false, true},
		{"flags only", false, true, true},
		{"both", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := invocation.BuildContext{
				ConfigVerbose: tt.configVerbose,
				Flags: invocation.Flags{
					Verbose: tt.flagVerbose,
					Args:    []string{"--test-args", "issue-1234", "--nocapture"},
				},
			}
			b := newBuilder(t, ctx, testutil.NewFakeResolver(outRoot), "linux")

			inv, err := b.Build(compiletestRequest())
			require.NoError(t, err)

			n := len(inv.Args)
			if tt.wantVerbose {
				assert.Equal(t, "--verbose", inv.Args[n-1])
				assert.Equal(t, []string{"--test-args", "issue-1234", "--nocapture"}, inv.Args[n-4:n-1])
			} else {
				assert.False(t, inv.HasArg("--verbose"))
				assert.Equal(t, []string{"--test-args", "issue-1234", "--nocapture"}, inv.Args[n-3:])
			}
		})
	}
}

func TestCompiletestConfiguredDefaults(t *testing.T) {
	p, err := paths.New(srcRoot, outRoot)
	require.NoError(t, err)
	b := invocation.New(invocation.Options{
		Context:  invocation.BuildContext{Paths: p, Build: "x86_64-linux"},
		Resolver: testutil.NewFakeResolver(outRoot),
		Defaults: &invocation.Defaults{
			Python:           "/usr/bin/python2.7",
			AndroidCrossPath: "/opt/android-ndk",
			HostRustcflags:   "-Crpath",
		},
	})

	inv, err := b.Build(compiletestRequest())
	require.NoError(t, err)

	python, _ := inv.Flag("--python")
	android, _ := inv.Flag("--android-cross-path")
	assert.Equal(t, "/usr/bin/python2.7", python)
	assert.Equal(t, "/opt/android-ndk", android)
}

func TestCompiletestIsDeterministic(t *testing.T) {
	ctx := invocation.BuildContext{Flags: invocation.Flags{Args: []string{"--a", "--b"}, Verbose: true}}
	b := newBuilder(t, ctx, testutil.NewFakeResolver(outRoot), "linux")

	first, err := b.Build(compiletestRequest())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := b.Build(compiletestRequest())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Mutating one result must not leak into the next build.
	first.Args[0] = "mutated"
	again, err := b.Build(compiletestRequest())
	require.NoError(t, err)
	assert.Equal(t, "--compile-lib-path", again.Args[0])
	assert.Equal(t, []string{"--a", "--b"}, b.Context().Flags.Args)
}

func TestResolutionFailuresAbort(t *testing.T) {
	tests := []struct {
		missing string
		code    errors.ErrorCode
	}{
		{"compiletest", errors.ErrToolNotFound},
		{"rustc", errors.ErrToolNotFound},
		{"rustdoc", errors.ErrToolNotFound},
		{"FileCheck", errors.ErrToolNotFound},
		{"rustc-libdir", errors.ErrLibdirNotFound},
		{"sysroot-libdir", errors.ErrLibdirNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.missing, func(t *testing.T) {
			b := newBuilder(t, invocation.BuildContext{}, testutil.NewFakeResolver(outRoot, tt.missing), "linux")

			inv, err := b.Build(compiletestRequest())
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Empty(t, inv.Program)
		})
	}

	t.Run("linkchecker", func(t *testing.T) {
		b := newBuilder(t, invocation.BuildContext{}, testutil.NewFakeResolver(outRoot, "linkchecker"), "linux")
		_, err := b.Build(types.TestRequest{Kind: types.KindLinkCheck, Stage: 1, Host: "x86_64-linux"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrToolNotFound))
	})
}

func TestBuildRejectsInvalidRequest(t *testing.T) {
	b := newBuilder(t, invocation.BuildContext{}, testutil.NewFakeResolver(outRoot), "linux")

	req := compiletestRequest()
	req.Mode = "bogus"
	_, err := b.Build(req)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestStageID(t *testing.T) {
	assert.Equal(t, "stage0-i686-pc-windows-gnu", invocation.StageID(0, "i686-pc-windows-gnu"))
	assert.Equal(t, "stage1-x86_64-linux", invocation.StageID(1, "x86_64-linux"))
}
