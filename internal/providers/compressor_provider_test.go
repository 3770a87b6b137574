package providers

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressorFor(t *testing.T, compression string) CompressorInterface {
	t.Helper()
	conf := validConfig()
	conf.Transport.Compression = compression
	c, err := NewCompressorProvider(conf)
	require.NoError(t, err)
	return c
}

func TestCompressorProvider_IdentityByDefault(t *testing.T) {
	c := compressorFor(t, "")
	assert.Equal(t, "", c.Encoding())

	out, err := c.Compress([]byte(`{"game_install_id":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"game_install_id":"a"}`), out)
}

func TestCompressorProvider_GzipRoundTrip(t *testing.T) {
	c := compressorFor(t, "gzip")
	assert.Equal(t, "gzip", c.Encoding())

	input := bytes.Repeat([]byte(`{"device":{"device_type":"desktop"}}`), 32)
	out, err := c.Compress(input)
	require.NoError(t, err)
	assert.Less(t, len(out), len(input))

	r, err := gzip.NewReader(bytes.NewReader(out))
	require.NoError(t, err)
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestCompressorProvider_ZstdRoundTrip(t *testing.T) {
	c := compressorFor(t, "zstd")
	assert.Equal(t, "zstd", c.Encoding())

	input := bytes.Repeat([]byte(`{"os":{"os_name":"Linux"}}`), 32)
	out, err := c.Compress(input)
	require.NoError(t, err)

	decoder, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer decoder.Close()
	decoded, err := decoder.DecodeAll(out, nil)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}

func TestCompressorProvider_Unsupported(t *testing.T) {
	conf := validConfig()
	conf.Transport.Compression = "brotli"
	_, err := NewCompressorProvider(conf)
	assert.Error(t, err)
}
