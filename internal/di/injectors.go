//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"glitchsdk/internal/probe"
	"glitchsdk/internal/providers"
	"glitchsdk/internal/services"
	"glitchsdk/structures"
)

func InitServices(cfg *structures.Config) (*services.Bundle, error) {

	wire.Build(
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewCompressorProvider,
		providers.NewHTTPTransport,

		probe.New,
		services.NewFingerprintService,
		services.NewIngestService,
		services.NewBundle,
	)

	return nil, nil
}
