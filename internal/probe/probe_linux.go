//go:build linux

package probe

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"golang.org/x/sys/unix"

	"glitchsdk/models"
)

type linuxProber struct{}

func newPlatformProber() Prober {
	return linuxProber{}
}

func (linuxProber) Probe(key string) string {
	switch key {
	case KeyOSName:
		return "Linux"
	case KeyDeviceType:
		return "desktop"
	case KeyOSVersion:
		return kernelRelease()
	}
	return Unknown
}

func (p linuxProber) Collect() models.FingerprintComponents {
	fp := models.FingerprintComponents{
		OSName:      "Linux",
		DeviceType:  "desktop",
		FormFactors: []string{"Desktop"},
	}

	if v := p.Probe(KeyOSVersion); v != Unknown {
		fp.OSVersion = v
	}

	if f, err := os.Open("/proc/cpuinfo"); err == nil {
		fp.CPUModel = cpuModelFromReader(f)
		f.Close()
	}
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		fp.CPUCores = n
	}
	if f, err := os.Open("/proc/meminfo"); err == nil {
		fp.MemoryMB = memTotalMBFromReader(f)
		f.Close()
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

// cpuModelFromReader pulls the first "model name" entry out of a
// /proc/cpuinfo stream, or "" when none is present.
func cpuModelFromReader(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		if _, value, found := strings.Cut(line, ":"); found {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// memTotalMBFromReader converts the MemTotal line of a /proc/meminfo stream
// (reported in kB) to megabytes, or 0 when absent or malformed.
func memTotalMBFromReader(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.Atoi(fields[1])
		if err != nil || kb <= 0 {
			return 0
		}
		return kb / 1024
	}
	return 0
}
