package payload

import "glitchsdk/models"

// InstallJSON renders an install record. user_install_id and platform are
// always present; game_version and referral_source are omitted when empty.
// A non-nil fingerprint is nested under fingerprint_components.
func InstallJSON(userInstallID, platform, gameVersion, referralSource string, fp *models.FingerprintComponents) string {
	root := newObject()
	root.strAlways("user_install_id", userInstallID)
	root.strAlways("platform", platform)
	root.str("game_version", gameVersion)
	root.str("referral_source", referralSource)
	if fp != nil {
		root.raw("fingerprint_components", FingerprintJSON(*fp))
	}
	return root.String()
}
