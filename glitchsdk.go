// Package glitchsdk reports game installs and purchases to the Glitch
// analytics API. It collects a best-effort device fingerprint from the host,
// serializes records into the service's canonical wire format and POSTs them
// to the ingestion endpoints, handing the raw response text back to the
// caller.
//
// Every call builds a fresh payload from the record it was given; the client
// holds no per-call state and is safe for concurrent use.
package glitchsdk

import (
	"context"
	"strings"

	json "github.com/goccy/go-json"

	"glitchsdk/internal/di"
	"glitchsdk/internal/providers"
	"glitchsdk/internal/services"
	"glitchsdk/models"
	"glitchsdk/structures"
)

type Client struct {
	conf     *structures.Config
	services *services.Bundle
}

// New builds a client from a programmatic config. Missing optional fields
// are defaulted before validation, so Config{Token: ..., TitleID: ...} is
// the minimal valid input.
func New(conf *structures.Config) (*Client, error) {
	conf.ApplyDefaults()
	if err := providers.NewCnfValidator(conf).Validate(); err != nil {
		return nil, err
	}

	bundle, err := di.InitServices(conf)
	if err != nil {
		return nil, err
	}

	return &Client{conf: conf, services: bundle}, nil
}

// NewFromFile builds a client from a yaml config file, with GLITCH_* env
// variables taking precedence over file values.
func NewFromFile(configPath string) (*Client, error) {
	conf, err := providers.NewConfigProvider(configPath)
	if err != nil {
		return nil, err
	}
	return New(conf)
}

// CollectFingerprint probes the host and merges the caller's overrides on
// top. The result can be edited further before it is sent.
func (c *Client) CollectFingerprint(overrides models.FingerprintComponents) models.FingerprintComponents {
	return c.services.Fingerprint.Collect(overrides)
}

// CreateInstall registers a bare install record and returns the raw API
// response. A transport failure is returned as text prefixed with
// "transport error: ".
func (c *Client) CreateInstall(ctx context.Context, userInstallID, platform string) string {
	return c.services.Ingest.CreateInstall(ctx, userInstallID, platform)
}

// CreateInstallWithFingerprint registers an install record carrying a device
// fingerprint. gameVersion and referralSource may be empty and are then
// omitted from the payload.
func (c *Client) CreateInstallWithFingerprint(ctx context.Context, userInstallID, platform, gameVersion, referralSource string, fp models.FingerprintComponents) string {
	return c.services.Ingest.CreateInstallWithFingerprint(ctx, userInstallID, platform, gameVersion, referralSource, fp)
}

// RecordPurchase submits a purchase event against an existing install.
func (c *Client) RecordPurchase(ctx context.Context, data models.PurchaseData) string {
	return c.services.Ingest.RecordPurchase(ctx, data)
}

// IsTransportError reports whether a response string returned by this client
// carries a transport failure rather than a service response.
func IsTransportError(response string) bool {
	return strings.HasPrefix(response, services.TransportErrorPrefix)
}

// DecodeResponse unmarshals a service response into v. Convenience only:
// the SDK itself never interprets response bodies.
func DecodeResponse(response string, v any) error {
	return json.Unmarshal([]byte(response), v)
}
