// Package check drives the test harnesses for a built stage.
//
// A Checker builds one invocation, prints a progress line, runs it to
// completion and returns the first error. Steps run strictly one after
// another; a failing step stops the rest.
package check
