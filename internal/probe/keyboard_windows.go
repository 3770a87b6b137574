//go:build windows

package probe

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	procMapVirtualKeyW  = user32.NewProc("MapVirtualKeyW")
	procGetKeyNameTextW = user32.NewProc("GetKeyNameTextW")
)

const mapvkVKToVSC = 0

// virtualKeys maps every canonical key to its Windows virtual-key code.
// Letters and digits use their ASCII codes; punctuation uses VK_OEM_* values.
var virtualKeys = map[string]uintptr{
	"KeyQ": 'Q', "KeyW": 'W', "KeyE": 'E', "KeyR": 'R', "KeyT": 'T',
	"KeyY": 'Y', "KeyU": 'U', "KeyI": 'I', "KeyO": 'O', "KeyP": 'P',
	"KeyA": 'A', "KeyS": 'S', "KeyD": 'D', "KeyF": 'F', "KeyG": 'G',
	"KeyH": 'H', "KeyJ": 'J', "KeyK": 'K', "KeyL": 'L',
	"KeyZ": 'Z', "KeyX": 'X', "KeyC": 'C', "KeyV": 'V', "KeyB": 'B',
	"KeyN": 'N', "KeyM": 'M',
	"Digit1": '1', "Digit2": '2', "Digit3": '3', "Digit4": '4', "Digit5": '5',
	"Digit6": '6', "Digit7": '7', "Digit8": '8', "Digit9": '9', "Digit0": '0',
	"Semicolon":    0xBA, // VK_OEM_1
	"Equal":        0xBB, // VK_OEM_PLUS
	"Comma":        0xBC, // VK_OEM_COMMA
	"Minus":        0xBD, // VK_OEM_MINUS
	"Period":       0xBE, // VK_OEM_PERIOD
	"Slash":        0xBF, // VK_OEM_2
	"Backquote":    0xC0, // VK_OEM_3
	"BracketLeft":  0xDB, // VK_OEM_4
	"Backslash":    0xDC, // VK_OEM_5
	"BracketRight": 0xDD, // VK_OEM_6
	"Quote":        0xDE, // VK_OEM_7
}

// ResolveLayout maps each canonical key to the glyph the active input layout
// produces for it. Keys whose scan-code or name lookup fails are elided.
func ResolveLayout() map[string]string {
	layout := make(map[string]string, len(canonicalKeys))
	for _, key := range canonicalKeys {
		vk, ok := virtualKeys[key]
		if !ok {
			continue
		}
		scan, _, _ := procMapVirtualKeyW.Call(vk, mapvkVKToVSC)
		if scan == 0 {
			continue
		}
		var buf [16]uint16
		// lParam bits 16-23 carry the scan code.
		n, _, _ := procGetKeyNameTextW.Call(
			uintptr(uint32(scan)<<16),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(len(buf)),
		)
		if n == 0 {
			continue
		}
		name := windows.UTF16ToString(buf[:n])
		if name == "" {
			continue
		}
		glyph := []rune(name)[:1]
		layout[key] = strings.ToLower(string(glyph))
	}
	return layout
}
