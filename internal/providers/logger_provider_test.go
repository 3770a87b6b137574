package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogProvider_Creation(t *testing.T) {
	logger, err := NewLogProvider(validConfig())
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Infof(TypeApp, "started %s", "ok")
	logger.Debugf(TypeProbe, "probing")
	logger.Warnf(TypeTransport, "slow response")
	logger.Errorf(TypeApp, "boom")
	logger.Close()
}

func TestLogProvider_InvalidLevel(t *testing.T) {
	conf := validConfig()
	conf.Logger.Level = "shout"
	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestTypeEnum_String(t *testing.T) {
	assert.Equal(t, "app", TypeApp.String())
	assert.Equal(t, "probe", TypeProbe.String())
	assert.Equal(t, "transport", TypeTransport.String())
}
