package probe

// canonicalKeys is the fixed key set a layout must be resolved against: the
// alphanumeric, digit and punctuation keys of a US-shaped matrix. Process-wide
// immutable data; read-only after init.
var canonicalKeys = []string{
	"KeyQ", "KeyW", "KeyE", "KeyR", "KeyT", "KeyY", "KeyU", "KeyI", "KeyO", "KeyP",
	"KeyA", "KeyS", "KeyD", "KeyF", "KeyG", "KeyH", "KeyJ", "KeyK", "KeyL",
	"KeyZ", "KeyX", "KeyC", "KeyV", "KeyB", "KeyN", "KeyM",
	"Backquote", "Digit1", "Digit2", "Digit3", "Digit4", "Digit5", "Digit6",
	"Digit7", "Digit8", "Digit9", "Digit0", "Minus", "Equal",
	"BracketLeft", "BracketRight", "Backslash", "Semicolon", "Quote",
	"Comma", "Period", "Slash",
}

var qwertyGlyphs = map[string]string{
	"KeyQ": "q", "KeyW": "w", "KeyE": "e", "KeyR": "r", "KeyT": "t",
	"KeyY": "y", "KeyU": "u", "KeyI": "i", "KeyO": "o", "KeyP": "p",
	"KeyA": "a", "KeyS": "s", "KeyD": "d", "KeyF": "f", "KeyG": "g",
	"KeyH": "h", "KeyJ": "j", "KeyK": "k", "KeyL": "l",
	"KeyZ": "z", "KeyX": "x", "KeyC": "c", "KeyV": "v", "KeyB": "b",
	"KeyN": "n", "KeyM": "m",
	"Backquote": "`", "Digit1": "1", "Digit2": "2", "Digit3": "3",
	"Digit4": "4", "Digit5": "5", "Digit6": "6", "Digit7": "7",
	"Digit8": "8", "Digit9": "9", "Digit0": "0", "Minus": "-", "Equal": "=",
	"BracketLeft": "[", "BracketRight": "]", "Backslash": `\`,
	"Semicolon": ";", "Quote": "'", "Comma": ",", "Period": ".", "Slash": "/",
}

// CanonicalKeys returns a copy of the canonical key set.
func CanonicalKeys() []string {
	keys := make([]string, len(canonicalKeys))
	copy(keys, canonicalKeys)
	return keys
}

// StaticQWERTYLayout returns the literal US-QWERTY mapping over the full
// canonical key set. It is the non-Windows fallback: it keeps the field
// populated, it is not a live layout read.
func StaticQWERTYLayout() map[string]string {
	layout := make(map[string]string, len(canonicalKeys))
	for _, key := range canonicalKeys {
		layout[key] = qwertyGlyphs[key]
	}
	return layout
}
