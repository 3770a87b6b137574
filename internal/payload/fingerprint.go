package payload

import "glitchsdk/models"

// FingerprintJSON renders a fingerprint into the canonical wire format.
// Groups appear in a fixed order and only when they carry at least one
// present member, so an all-empty record collapses to "{}". The wow64 flag
// is the one member without an omission rule: it is emitted whenever the
// desktop_data group is present, whichever value it holds.
func FingerprintJSON(fp models.FingerprintComponents) string {
	root := newObject()

	device := newObject()
	device.str("model", fp.DeviceModel)
	device.str("type", fp.DeviceType)
	device.str("manufacturer", fp.DeviceManufacturer)
	root.group("device", device)

	os := newObject()
	os.str("name", fp.OSName)
	os.str("version", fp.OSVersion)
	root.group("os", os)

	display := newObject()
	display.str("resolution", fp.DisplayResolution)
	display.num("density", fp.DisplayDensity)
	root.group("display", display)

	hardware := newObject()
	hardware.str("cpu", fp.CPUModel)
	hardware.num("cores", fp.CPUCores)
	hardware.str("gpu", fp.GPUModel)
	hardware.num("memory", fp.MemoryMB)
	root.group("hardware", hardware)

	environment := newObject()
	environment.str("language", fp.Language)
	environment.str("timezone", fp.Timezone)
	environment.str("region", fp.Region)
	root.group("environment", environment)

	// desktop_data presence is decided by formFactors/architecture alone;
	// bitness or platformVersion by themselves do not open the group.
	if len(fp.FormFactors) > 0 || fp.Architecture != "" {
		desktop := newObject()
		desktop.strArray("formFactors", fp.FormFactors)
		desktop.str("architecture", fp.Architecture)
		desktop.str("bitness", fp.Bitness)
		desktop.str("platformVersion", fp.PlatformVersion)
		desktop.boolean("wow64", fp.IsWow64)
		root.group("desktop_data", desktop)
	}

	root.sortedStrMap("keyboard_layout", fp.KeyboardLayout)

	identifiers := newObject()
	identifiers.str("advertising_id", fp.AdvertisingID)
	root.group("identifiers", identifiers)

	return root.String()
}
