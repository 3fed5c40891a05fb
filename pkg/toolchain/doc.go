// Package toolchain resolves the artifacts of an already-built stage:
// compiler and rustdoc binaries, runtime library directories, auxiliary
// tool binaries and the LLVM FileCheck used by codegen tests.
//
// Resolver is the seam the invocation builder depends on. Layout is the
// default implementation over the conventional build output tree:
//
//	<out>/<host>/stage<N>/bin/rustc
//	<out>/<host>/stage<N>/lib/rustlib/<target>/lib
//	<out>/<host>/stage<N>-tools/release/<tool>
//	<out>/<build>/llvm/build/bin/FileCheck
//	<out>/<target>/native/rust-test-helpers
//
// Nothing here builds a stage. A missing artifact is an error.
package toolchain
