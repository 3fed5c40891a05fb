// Package testutil provides test doubles for stagecheck components.
//
// Key components:
//   - FakeResolver: toolchain.Resolver with fixed paths and injectable failures
//   - MockRunner: testify mock recording every Invocation it is asked to run
//   - StageFiles: the artifact list of a complete built stage, for seeding
//     an in-memory filesystem under toolchain.Layout
package testutil
