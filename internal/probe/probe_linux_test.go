//go:build linux

package probe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCPUInfo = `processor	: 0
vendor_id	: GenuineIntel
cpu family	: 6
model		: 154
model name	: 12th Gen Intel(R) Core(TM) i7-12700H
stepping	: 3
`

const sampleMemInfo = `MemTotal:       32546012 kB
MemFree:         1200000 kB
MemAvailable:   20000000 kB
`

func TestProbe_LinuxFixedKeys(t *testing.T) {
	p := New()
	assert.Equal(t, "Linux", p.Probe(KeyOSName))
	assert.Equal(t, "desktop", p.Probe(KeyDeviceType))
	assert.NotEmpty(t, p.Probe(KeyOSVersion))
}

func TestProbe_LinuxArchitectureUnresolved(t *testing.T) {
	// architecture is only populated on windows
	assert.Equal(t, Unknown, New().Probe(KeyArchitecture))
}

func TestCPUModelFromReader(t *testing.T) {
	model := cpuModelFromReader(strings.NewReader(sampleCPUInfo))
	assert.Equal(t, "12th Gen Intel(R) Core(TM) i7-12700H", model)
}

func TestCPUModelFromReader_NoEntry(t *testing.T) {
	assert.Equal(t, "", cpuModelFromReader(strings.NewReader("flags\t: fpu vme\n")))
}

func TestMemTotalMBFromReader(t *testing.T) {
	mb := memTotalMBFromReader(strings.NewReader(sampleMemInfo))
	assert.Equal(t, 32546012/1024, mb)
}

func TestMemTotalMBFromReader_Malformed(t *testing.T) {
	assert.Equal(t, 0, memTotalMBFromReader(strings.NewReader("MemTotal: notanumber kB\n")))
	assert.Equal(t, 0, memTotalMBFromReader(strings.NewReader("MemFree: 12 kB\n")))
	assert.Equal(t, 0, memTotalMBFromReader(strings.NewReader("MemTotal:\n")))
}

func TestCollect_LinuxSetsFixedFields(t *testing.T) {
	fp := New().Collect()
	assert.Equal(t, "Linux", fp.OSName)
	assert.Equal(t, "desktop", fp.DeviceType)
	assert.Equal(t, []string{"Desktop"}, fp.FormFactors)
}
