//go:build !windows

package probe

// ResolveLayout returns the static US-QWERTY mapping. Live layout detection
// only exists on Windows; elsewhere the fixed map keeps the fingerprint
// field populated.
func ResolveLayout() map[string]string {
	return StaticQWERTYLayout()
}
