package structures

// DefaultBaseURL is the production ingestion API root.
const DefaultBaseURL = "https://api.glitch.fun/api"

const (
	defaultTimeoutSeconds = 15
	defaultLogLevel       = "info"
)

type TransportConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds" validate:"uint"`
	// Compression selects an optional request body encoding: "", "gzip"
	// or "zstd". Empty means uncompressed bodies, the wire default.
	Compression string `yaml:"compression" validate:"in:gzip,zstd"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Token     string          `yaml:"token" validate:"required"`
	TitleID   string          `yaml:"titleId" validate:"required"`
	BaseURL   string          `yaml:"baseUrl" validate:"required|fullUrl"`
	Transport TransportConfig `yaml:"transport"`
	Logger    LoggerConfig    `yaml:"logger"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ApplyDefaults fills the fields a programmatically built config may leave
// empty. Called before validation, so a minimal Config{Token, TitleID}
// passes.
func (c *Config) ApplyDefaults() {
	if c.AppName == "" {
		c.AppName = "GlitchSDK"
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Transport.TimeoutSeconds <= 0 {
		c.Transport.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}
}
