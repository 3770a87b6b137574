package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glitchsdk/structures"
)

func validConfig() *structures.Config {
	conf := &structures.Config{
		Token:   "test-token",
		TitleID: "title-123",
	}
	conf.ApplyDefaults()
	return conf
}

func TestCnfValidator_ValidConfig(t *testing.T) {
	assert.NoError(t, NewCnfValidator(validConfig()).Validate())
}

func TestCnfValidator_MissingToken(t *testing.T) {
	conf := validConfig()
	conf.Token = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_MissingTitleID(t *testing.T) {
	conf := validConfig()
	conf.TitleID = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_BadBaseURL(t *testing.T) {
	conf := validConfig()
	conf.BaseURL = "not a url"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_BadLogLevel(t *testing.T) {
	conf := validConfig()
	conf.Logger.Level = "loud"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_BadCompression(t *testing.T) {
	conf := validConfig()
	conf.Transport.Compression = "lz77"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_CompressionOptional(t *testing.T) {
	conf := validConfig()
	conf.Transport.Compression = ""
	assert.NoError(t, NewCnfValidator(conf).Validate())
}
