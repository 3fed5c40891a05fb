// Package filesystem provides the stat-only filesystem views used to
// check that toolchain artifacts exist: the OS filesystem for real runs
// and an afero-backed one for tests.
package filesystem
