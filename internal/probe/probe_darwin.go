//go:build darwin

package probe

import (
	"strings"

	"golang.org/x/sys/unix"

	"glitchsdk/models"
)

// sysctl option names, see `man 3 sysctl`.
const (
	sysctlCPUBrand     = "machdep.cpu.brand_string"
	sysctlPhysicalCPUs = "hw.physicalcpu"
	sysctlMemSize      = "hw.memsize"
)

type darwinProber struct{}

func newPlatformProber() Prober {
	return darwinProber{}
}

func (darwinProber) Probe(key string) string {
	switch key {
	case KeyOSName:
		return "MacOS"
	case KeyDeviceType:
		return "desktop"
	case KeyOSVersion:
		return kernelRelease()
	}
	return Unknown
}

func (p darwinProber) Collect() models.FingerprintComponents {
	fp := models.FingerprintComponents{
		OSName:      "MacOS",
		DeviceType:  "desktop",
		FormFactors: []string{"Desktop"},
	}

	if v := p.Probe(KeyOSVersion); v != Unknown {
		fp.OSVersion = v
	}

	if brand, err := unix.Sysctl(sysctlCPUBrand); err == nil {
		fp.CPUModel = strings.TrimSpace(brand)
	}
	if cores, err := unix.SysctlUint32(sysctlPhysicalCPUs); err == nil && cores > 0 {
		fp.CPUCores = int(cores)
	}
	if memBytes, err := unix.SysctlUint64(sysctlMemSize); err == nil && memBytes > 0 {
		fp.MemoryMB = int(memBytes / (1024 * 1024))
	}

	return fp
}

func kernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Unknown
	}
	release := unix.ByteSliceToString(uts.Release[:])
	if release == "" {
		return Unknown
	}
	return release
}
