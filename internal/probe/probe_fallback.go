//go:build !linux && !darwin && !windows

package probe

import "glitchsdk/models"

// fallbackProber covers operating systems the library has no live queries
// for. Every key resolves to the Unknown sentinel and Collect yields an
// empty record, leaving the assembler's defaults as the only content.
type fallbackProber struct{}

func newPlatformProber() Prober {
	return fallbackProber{}
}

func (fallbackProber) Probe(string) string {
	return Unknown
}

func (fallbackProber) Collect() models.FingerprintComponents {
	return models.FingerprintComponents{}
}
