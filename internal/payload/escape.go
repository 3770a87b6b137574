// Package payload renders records into the ingestion service's canonical
// wire format: fixed member order, per-field omission rules, no trailing
// separators. Output is deterministic for a given record regardless of how
// the record was populated.
package payload

import "strings"

// Escape makes text safe to embed inside a double-quoted wire-format string
// literal. Backslash, double quote, newline, carriage return and tab become
// their two-character escape sequences; every other byte passes through
// unchanged. Total over any input.
func Escape(text string) string {
	if !strings.ContainsAny(text, "\\\"\n\r\t") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
