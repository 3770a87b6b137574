//go:build windows

package probe

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sys/windows"

	"glitchsdk/models"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

type windowsProber struct{}

func newPlatformProber() Prober {
	return windowsProber{}
}

func (windowsProber) Probe(key string) string {
	switch key {
	case KeyOSName:
		return "Windows"
	case KeyDeviceType:
		return "desktop"
	case KeyOSVersion:
		info := windows.RtlGetVersion()
		if info == nil {
			return Unknown
		}
		return fmt.Sprintf("%d.%d.%d", info.MajorVersion, info.MinorVersion, info.BuildNumber)
	case KeyArchitecture:
		if runtime.GOARCH == "amd64" {
			return "x86"
		}
		return Unknown
	}
	return Unknown
}

func (p windowsProber) Collect() models.FingerprintComponents {
	fp := models.FingerprintComponents{
		OSName:      "Windows",
		DeviceType:  "desktop",
		FormFactors: []string{"Desktop"},
		Bitness:     "64",
	}

	if v := p.Probe(KeyOSVersion); v != Unknown {
		fp.OSVersion = v
		fp.PlatformVersion = v
	}
	if a := p.Probe(KeyArchitecture); a != Unknown {
		fp.Architecture = a
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		fp.CPUModel = strings.TrimSpace(infos[0].ModelName)
	}
	if cores, err := cpu.Counts(false); err == nil && cores > 0 {
		fp.CPUCores = cores
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm.Total > 0 {
		fp.MemoryMB = int(vm.Total / (1024 * 1024))
	}

	fp.DisplayResolution = displayResolution()

	var wow64 bool
	if err := windows.IsWow64Process(windows.CurrentProcess(), &wow64); err == nil {
		fp.IsWow64 = wow64
	}

	return fp
}

func displayResolution() string {
	width, _, _ := procGetSystemMetrics.Call(uintptr(smCxScreen))
	height, _, _ := procGetSystemMetrics.Call(uintptr(smCyScreen))
	if width == 0 || height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", width, height)
}
