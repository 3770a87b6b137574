package services

import (
	"time"

	"glitchsdk/internal/probe"
	"glitchsdk/internal/providers"
	"glitchsdk/models"
)

const (
	defaultDeviceType = "desktop"
	defaultLanguage   = "en-US"
)

type FingerprintServiceInterface interface {
	// Collect probes the host, fills defaults for fields still empty after
	// probing, and applies the caller's overrides last. Overrides win over
	// both probed values and defaults; a zero-valued override field is
	// treated as "not overridden".
	Collect(overrides models.FingerprintComponents) models.FingerprintComponents
}

type FingerprintService struct {
	prober  probe.Prober
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewFingerprintService(prober probe.Prober, logger providers.Logger, metrics providers.MetricsProviderInterface) FingerprintServiceInterface {
	return &FingerprintService{
		prober:  prober,
		logger:  logger,
		metrics: metrics,
	}
}

func (fs *FingerprintService) Collect(overrides models.FingerprintComponents) models.FingerprintComponents {
	fp := fs.prober.Collect()
	fp.KeyboardLayout = probe.ResolveLayout()

	if fp.Timezone == "" {
		if tz := time.Now().Location().String(); tz != "" && tz != "Local" {
			fp.Timezone = tz
		}
	}

	fs.recordMisses(&fp)
	applyDefaults(&fp)
	applyOverrides(&fp, overrides)
	return fp
}

func (fs *FingerprintService) recordMisses(fp *models.FingerprintComponents) {
	misses := map[string]bool{
		"os_version": fp.OSVersion == "",
		"cpu_model":  fp.CPUModel == "",
		"cpu_cores":  fp.CPUCores <= 0,
		"memory_mb":  fp.MemoryMB <= 0,
	}
	for key, missed := range misses {
		if missed {
			fs.metrics.IncProbeMisses(key)
			fs.logger.Debugf(providers.TypeProbe, "probe miss: %s", key)
		}
	}
}

// applyDefaults fills only the two fields the service guarantees; everything
// else stays absent rather than guessed.
func applyDefaults(fp *models.FingerprintComponents) {
	if fp.DeviceType == "" {
		fp.DeviceType = defaultDeviceType
	}
	if fp.Language == "" {
		fp.Language = defaultLanguage
	}
}

func applyOverrides(fp *models.FingerprintComponents, o models.FingerprintComponents) {
	setStr := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	setInt := func(dst *int, val int) {
		if val > 0 {
			*dst = val
		}
	}

	setStr(&fp.DeviceModel, o.DeviceModel)
	setStr(&fp.DeviceType, o.DeviceType)
	setStr(&fp.DeviceManufacturer, o.DeviceManufacturer)
	setStr(&fp.OSName, o.OSName)
	setStr(&fp.OSVersion, o.OSVersion)
	setStr(&fp.DisplayResolution, o.DisplayResolution)
	setInt(&fp.DisplayDensity, o.DisplayDensity)
	setStr(&fp.CPUModel, o.CPUModel)
	setInt(&fp.CPUCores, o.CPUCores)
	setStr(&fp.GPUModel, o.GPUModel)
	setInt(&fp.MemoryMB, o.MemoryMB)
	setStr(&fp.Language, o.Language)
	setStr(&fp.Timezone, o.Timezone)
	setStr(&fp.Region, o.Region)
	setStr(&fp.Architecture, o.Architecture)
	setStr(&fp.Bitness, o.Bitness)
	setStr(&fp.PlatformVersion, o.PlatformVersion)
	setStr(&fp.AdvertisingID, o.AdvertisingID)

	if len(o.FormFactors) > 0 {
		fp.FormFactors = o.FormFactors
	}
	if len(o.KeyboardLayout) > 0 {
		fp.KeyboardLayout = o.KeyboardLayout
	}
	if o.IsWow64 {
		fp.IsWow64 = true
	}
}
