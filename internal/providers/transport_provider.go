package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"glitchsdk/structures"
)

// Transport is the sink the ingest service hands serialized payloads to.
// Headers arrive as "Key: Value" strings in the order they must be applied.
// The response body is returned verbatim whatever the status code; err is
// non-nil only when no response was obtained at all.
type Transport interface {
	Send(ctx context.Context, url string, headers []string, body string) (string, error)
}

type HTTPTransport struct {
	client     *http.Client
	compressor CompressorInterface
	logger     Logger
}

func NewHTTPTransport(conf *structures.Config, compressor CompressorInterface, logger Logger) Transport {
	return &HTTPTransport{
		client:     &http.Client{Timeout: time.Duration(conf.Transport.TimeoutSeconds) * time.Second},
		compressor: compressor,
		logger:     logger,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, url string, headers []string, body string) (string, error) {
	payload := []byte(body)

	encoding := t.compressor.Encoding()
	if encoding != "" {
		compressed, err := t.compressor.Compress(payload)
		if err != nil {
			return "", fmt.Errorf("compress body: %w", err)
		}
		payload = compressed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	for _, h := range headers {
		key, value, found := strings.Cut(h, ":")
		if !found {
			continue
		}
		req.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if encoding != "" {
		req.Header.Set("Content-Encoding", encoding)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	t.logger.Debugf(TypeTransport, "POST %s -> %d (%d bytes)", url, resp.StatusCode, len(data))
	return string(data), nil
}
