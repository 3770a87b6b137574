package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsProber(t *testing.T) {
	p := New()
	require.NotNil(t, p)
}

func TestProbe_UnknownKey(t *testing.T) {
	p := New()
	assert.Equal(t, Unknown, p.Probe("no_such_key"))
}

func TestCollect_NeverPanicsAndIsBestEffort(t *testing.T) {
	p := New()
	assert.NotPanics(t, func() {
		fp := p.Collect()
		// Memory and core counts are either unset or sane.
		assert.GreaterOrEqual(t, fp.MemoryMB, 0)
		assert.GreaterOrEqual(t, fp.CPUCores, 0)
	})
}
