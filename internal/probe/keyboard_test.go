package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKeys_CountAndUniqueness(t *testing.T) {
	keys := CanonicalKeys()
	require.Len(t, keys, 47)

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestCanonicalKeys_ReturnsCopy(t *testing.T) {
	keys := CanonicalKeys()
	keys[0] = "mutated"
	assert.Equal(t, "KeyQ", CanonicalKeys()[0])
}

func TestStaticQWERTYLayout_CoversFullKeySet(t *testing.T) {
	layout := StaticQWERTYLayout()
	require.Len(t, layout, 47)
	for _, key := range CanonicalKeys() {
		glyph, ok := layout[key]
		assert.True(t, ok, "missing %s", key)
		assert.NotEmpty(t, glyph, "empty glyph for %s", key)
	}
	assert.Equal(t, "q", layout["KeyQ"])
	assert.Equal(t, `\`, layout["Backslash"])
	assert.Equal(t, "`", layout["Backquote"])
}

func TestStaticQWERTYLayout_ReturnsFreshMap(t *testing.T) {
	a := StaticQWERTYLayout()
	a["KeyQ"] = "mutated"
	assert.Equal(t, "q", StaticQWERTYLayout()["KeyQ"])
}

func TestResolveLayout_NeverEmptyOnSupportedPlatforms(t *testing.T) {
	layout := ResolveLayout()
	assert.NotEmpty(t, layout)
	for key := range layout {
		assert.Contains(t, CanonicalKeys(), key)
	}
}
