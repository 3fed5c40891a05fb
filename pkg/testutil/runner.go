package testutil

import (
	"github.com/arthur-debert/stagecheck/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockRunner implements runner.Runner for testing
type MockRunner struct {
	mock.Mock
	Invocations []types.Invocation
}

// Run records the invocation and returns the configured error
func (m *MockRunner) Run(inv types.Invocation) error {
	m.Invocations = append(m.Invocations, inv)
	args := m.Called(inv)
	return args.Error(0)
}

// Programs returns the program of every recorded invocation, in order
func (m *MockRunner) Programs() []string {
	out := make([]string, 0, len(m.Invocations))
	for _, inv := range m.Invocations {
		out = append(out, inv.Program)
	}
	return out
}
