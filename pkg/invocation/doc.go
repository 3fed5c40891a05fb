// Package invocation turns a TestRequest into the exact command line and
// environment overrides each external test tool expects.
//
// Building is pure: the same request, context and resolver state always
// produce the same Invocation, argument for argument. Nothing is spawned
// here and the process environment is only ever read.
package invocation
