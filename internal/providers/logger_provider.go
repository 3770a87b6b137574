package providers

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"glitchsdk/structures"
)

// TypeEnum tags a log line with the subsystem it came from.
type TypeEnum uint8

const (
	TypeApp TypeEnum = iota
	TypeProbe
	TypeTransport
)

func (t TypeEnum) String() string {
	switch t {
	case TypeProbe:
		return "probe"
	case TypeTransport:
		return "transport"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	logger zerolog.Logger
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Str("app", conf.AppName).
		Logger()

	return &LogProvider{logger: logger}, nil
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Error().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Warn().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.logger.Info().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Debug().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Close() {}
