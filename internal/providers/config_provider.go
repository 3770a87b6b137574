package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"glitchsdk/structures"
)

// NewConfigProvider loads a yaml config file and overlays GLITCH_* env
// variables, then validates the result. Callers that build the Config in
// code skip this entirely and hand the struct to the facade directly.
func NewConfigProvider(configPath string) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(configPath)
	v.AddConfigPath(filepath.Dir(configPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.BindEnv("token", "GLITCH_TOKEN")
	v.BindEnv("titleId", "GLITCH_TITLE_ID")
	v.BindEnv("baseUrl", "GLITCH_BASE_URL")
	v.BindEnv("logger.level", "GLITCH_LOG_LEVEL")
	v.BindEnv("metrics.enabled", "GLITCH_METRICS_ENABLED")
	v.BindEnv("transport.timeoutSeconds", "GLITCH_TRANSPORT_TIMEOUT")
	v.BindEnv("transport.compression", "GLITCH_TRANSPORT_COMPRESSION")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	conf.ApplyDefaults()

	if err := NewCnfValidator(&conf).Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}
