// Package types defines the values passed between stagecheck components:
// the staged Compiler, the closed enumerations for test kind, mode and
// suite, the TestRequest a caller builds and the Invocation it resolves to.
package types
