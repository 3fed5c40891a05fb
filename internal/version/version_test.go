package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "1.2.0", "abc123", "2024-05-01"
	assert.Equal(t, "stagecheck 1.2.0 (commit abc123, built 2024-05-01)", String())
}
