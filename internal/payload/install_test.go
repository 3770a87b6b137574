package payload

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"

	"glitchsdk/models"
)

func TestInstallJSON_Bare(t *testing.T) {
	out := InstallJSON("user-1", "steam", "", "", nil)
	assert.Equal(t, `{"user_install_id":"user-1","platform":"steam"}`, out)
}

func TestInstallJSON_RequiredFieldsAlwaysPresent(t *testing.T) {
	out := InstallJSON("", "", "", "", nil)
	assert.Equal(t, `{"user_install_id":"","platform":""}`, out)
}

func TestInstallJSON_GameVersionWithoutReferral(t *testing.T) {
	out := InstallJSON("user-1", "steam", "1.2.3", "", nil)
	assert.Contains(t, out, `"game_version":"1.2.3"`)
	assert.NotContains(t, out, "referral_source")
}

func TestInstallJSON_NestedFingerprint(t *testing.T) {
	fp := models.FingerprintComponents{OSName: "Linux", OSVersion: "6.8.0"}
	out := InstallJSON("user-1", "steam", "", "campaign-x", &fp)

	var m map[string]any
	assert.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "campaign-x", m["referral_source"])

	nested := m["fingerprint_components"].(map[string]any)
	os := nested["os"].(map[string]any)
	assert.Equal(t, "Linux", os["name"])
	assert.Equal(t, "6.8.0", os["version"])
}
