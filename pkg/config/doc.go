// Package config loads stagecheck configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. one TOML config file: the explicit --config path, else the first
//     existing file among the search candidates
//  3. STAGECHECK_ environment variables; the first underscore after the
//     prefix separates section from key, so STAGECHECK_COMPILETEST_ANDROID_CROSS_PATH
//     sets compiletest.android_cross_path
//  4. overrides supplied by the caller, usually command-line flags
package config
