package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmojiStandard(t *testing.T) {
	e, err := ParseEmoji("👍")
	require.NoError(t, err)
	assert.Equal(t, EmojiStandard, e.Kind)
	assert.Equal(t, "👍", e.Name)
	assert.Empty(t, e.ID)
}

func TestParseEmojiCustom(t *testing.T) {
	e, err := ParseEmoji("<:boop:123456789>")
	require.NoError(t, err)
	assert.Equal(t, EmojiCustom, e.Kind)
	assert.Equal(t, "boop", e.Name)
	assert.Equal(t, "123456789", e.ID)
}

func TestParseEmojiAnimatedCustom(t *testing.T) {
	e, err := ParseEmoji("<a:spin:42>")
	require.NoError(t, err)
	assert.Equal(t, EmojiCustom, e.Kind)
	assert.Equal(t, "spin", e.Name)
	assert.Equal(t, "42", e.ID)
}

func TestParseEmojiTrimsWhitespace(t *testing.T) {
	e, err := ParseEmoji("  🎉 ")
	require.NoError(t, err)
	assert.Equal(t, "🎉", e.Name)
}

func TestParseEmojiEmpty(t *testing.T) {
	_, err := ParseEmoji("   ")
	assert.Error(t, err)
}

func TestEmojiStringRoundTrip(t *testing.T) {
	for _, raw := range []string{"👍", "<:boop:123456789>"} {
		e, err := ParseEmoji(raw)
		require.NoError(t, err)

		back, err := ParseEmoji(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, back, "String() output must parse back to the same emoji")
	}
}

func TestEmojiAPIName(t *testing.T) {
	standard := Emoji{Kind: EmojiStandard, Name: "👍"}
	assert.Equal(t, "👍", standard.APIName())

	custom := Emoji{Kind: EmojiCustom, Name: "boop", ID: "123"}
	assert.Equal(t, "boop:123", custom.APIName())
}

func TestEmojiIsZero(t *testing.T) {
	assert.True(t, Emoji{}.IsZero())
	assert.False(t, Emoji{Kind: EmojiStandard, Name: "👍"}.IsZero())
}
