package types

import (
	"github.com/arthur-debert/stagecheck/pkg/errors"
)

// TestRequest describes one invocation to build. Target, Mode and Suite
// are only read for KindCompiletest.
type TestRequest struct {
	Kind   TestKind
	Stage  uint32
	Host   Triple
	Target Triple
	Mode   Mode
	Suite  Suite
}

// Compiler returns the compiler the request runs against
func (r TestRequest) Compiler() Compiler {
	return NewCompiler(r.Stage, r.Host)
}

// Validate checks that the request carries what its kind needs
func (r TestRequest) Validate() error {
	if _, err := ParseTestKind(string(r.Kind)); err != nil {
		return err
	}
	if r.Host == "" {
		return errors.New(errors.ErrInvalidInput, "test request requires a host triple")
	}
	if r.Kind != KindCompiletest {
		return nil
	}
	if r.Target == "" {
		return errors.New(errors.ErrInvalidInput, "compiletest request requires a target triple")
	}
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	if _, err := ParseSuite(string(r.Suite)); err != nil {
		return err
	}
	return nil
}
