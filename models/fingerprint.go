package models

// FingerprintComponents is the device fingerprint sent alongside an install
// record. Every field is optional: probing fills what the host exposes, the
// caller overrides what it knows better, and the serializer omits whatever
// stays at its zero value. The one exception is IsWow64, which is rendered
// unconditionally once the desktop_data group is present.
type FingerprintComponents struct {
	// Device
	DeviceModel        string
	DeviceType         string // "desktop", "mobile", "console", ...
	DeviceManufacturer string

	// Operating system
	OSName    string
	OSVersion string

	// Display
	DisplayResolution string // e.g. "1920x1080"
	DisplayDensity    int    // DPI

	// Hardware
	CPUModel string
	CPUCores int
	GPUModel string
	MemoryMB int

	// Environment
	Language string // e.g. "en-US"
	Timezone string // e.g. "America/New_York"
	Region   string // e.g. "US"

	// Desktop-specific metadata
	FormFactors     []string
	Architecture    string
	Bitness         string
	PlatformVersion string
	IsWow64         bool // 32-bit process on a 64-bit OS

	// Key code -> glyph mapping of the active input layout.
	KeyboardLayout map[string]string

	// IDFA/AAID when available.
	AdvertisingID string
}
