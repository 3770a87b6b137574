package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glitchsdk/internal/payload"
	"glitchsdk/internal/providers"
	"glitchsdk/models"
	"glitchsdk/structures"
)

// TransportErrorPrefix marks a return value that carries a transport
// failure instead of a service response. Callers pattern-match on it.
const TransportErrorPrefix = "transport error: "

const (
	endpointInstalls  = "installs"
	endpointPurchases = "purchases"
)

// IngestServiceInterface submits records to the ingestion API. Every method
// blocks until the call completes and returns the raw response text; a
// failed transport yields a TransportErrorPrefix-ed string, never a panic.
type IngestServiceInterface interface {
	CreateInstall(ctx context.Context, userInstallID, platform string) string
	CreateInstallWithFingerprint(ctx context.Context, userInstallID, platform, gameVersion, referralSource string, fp models.FingerprintComponents) string
	RecordPurchase(ctx context.Context, data models.PurchaseData) string
}

type IngestService struct {
	conf      *structures.Config
	transport providers.Transport
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
}

func NewIngestService(conf *structures.Config, transport providers.Transport, logger providers.Logger, metrics providers.MetricsProviderInterface) IngestServiceInterface {
	return &IngestService{
		conf:      conf,
		transport: transport,
		logger:    logger,
		metrics:   metrics,
	}
}

func (is *IngestService) CreateInstall(ctx context.Context, userInstallID, platform string) string {
	body := payload.InstallJSON(userInstallID, platform, "", "", nil)
	return is.send(ctx, endpointInstalls, body)
}

func (is *IngestService) CreateInstallWithFingerprint(ctx context.Context, userInstallID, platform, gameVersion, referralSource string, fp models.FingerprintComponents) string {
	body := payload.InstallJSON(userInstallID, platform, gameVersion, referralSource, &fp)
	return is.send(ctx, endpointInstalls, body)
}

func (is *IngestService) RecordPurchase(ctx context.Context, data models.PurchaseData) string {
	if data.GameInstallID == "" {
		is.logger.Warnf(providers.TypeApp, "recording purchase without game_install_id")
	}
	body := payload.PurchaseJSON(data)
	return is.send(ctx, endpointPurchases, body)
}

func (is *IngestService) send(ctx context.Context, endpoint, body string) string {
	url := fmt.Sprintf("%s/titles/%s/%s", strings.TrimRight(is.conf.BaseURL, "/"), is.conf.TitleID, endpoint)
	headers := []string{
		"Content-Type: application/json",
		"Authorization: Bearer " + is.conf.Token,
	}

	is.metrics.ObservePayloadBytes(endpoint, len(body))

	start := time.Now()
	resp, err := is.transport.Send(ctx, url, headers, body)
	is.metrics.ObserveRequestDuration(endpoint, time.Since(start))

	if err != nil {
		is.metrics.IncRequestsTotal(endpoint, "error")
		is.logger.Errorf(providers.TypeTransport, "%s request failed: %s", endpoint, err)
		return TransportErrorPrefix + err.Error()
	}

	is.metrics.IncRequestsTotal(endpoint, "ok")
	return resp
}
