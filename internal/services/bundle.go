package services

// Bundle groups the wired services the facade exposes.
type Bundle struct {
	Fingerprint FingerprintServiceInterface
	Ingest      IngestServiceInterface
}

func NewBundle(fingerprint FingerprintServiceInterface, ingest IngestServiceInterface) *Bundle {
	return &Bundle{
		Fingerprint: fingerprint,
		Ingest:      ingest,
	}
}
