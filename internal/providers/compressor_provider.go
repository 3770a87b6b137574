package providers

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"glitchsdk/structures"
)

// CompressorInterface encodes request bodies before transmission.
// Encoding returns the Content-Encoding token, or "" for the identity
// compressor, in which case the transport leaves the body untouched.
type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Encoding() string
}

func NewCompressorProvider(conf *structures.Config) (CompressorInterface, error) {
	switch conf.Transport.Compression {
	case "":
		return &identityCompressor{}, nil
	case "gzip":
		return &GzipCompressor{}, nil
	case "zstd":
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		return &ZstdCompressor{encoder: encoder}, nil
	default:
		return nil, fmt.Errorf("unsupported compression %q", conf.Transport.Compression)
	}
}

type ZstdCompressor struct {
	encoder *zstd.Encoder
}

func (z *ZstdCompressor) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

func (z *ZstdCompressor) Encoding() string { return "zstd" }

type GzipCompressor struct{}

func (g *GzipCompressor) Compress(val []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(val); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *GzipCompressor) Encoding() string { return "gzip" }

type identityCompressor struct{}

func (i *identityCompressor) Compress(val []byte) ([]byte, error) { return val, nil }
func (i *identityCompressor) Encoding() string                   { return "" }
