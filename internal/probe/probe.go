// Package probe gathers raw device facts from the host operating system.
// Each fact is queried best-effort and independently: a source that cannot
// be read leaves the matching fingerprint field unset and never fails the
// collection as a whole.
package probe

import "glitchsdk/models"

// Unknown is the sentinel returned by Probe for keys the host variant
// cannot resolve.
const Unknown = "unknown"

// Keys accepted by Prober.Probe.
const (
	KeyOSName       = "os_name"
	KeyOSVersion    = "os_version"
	KeyDeviceType   = "device_type"
	KeyArchitecture = "architecture"
)

// Prober answers single fact queries and assembles the full probed record.
// Implementations are selected per GOOS at build time; all of them are
// stateless and safe for concurrent use.
type Prober interface {
	// Probe resolves one key, returning Unknown when the fact is
	// unobtainable on this host.
	Probe(key string) string

	// Collect builds a fingerprint from everything the host exposes.
	// Fields whose source cannot be read stay at their zero value.
	Collect() models.FingerprintComponents
}

// New returns the prober for the operating system this binary was built for.
func New() Prober {
	return newPlatformProber()
}
