package relay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyi-bot/models"
)

func TestStripPayload(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"prefixed trigger", ".fyi Raid at noon", "Raid at noon"},
		{"bare trigger", "fyi Raid at noon", "Raid at noon"},
		{"uppercase trigger", "FYI Raid at noon", "Raid at noon"},
		{"other prefix character", "?fyi Raid at noon", "Raid at noon"},
		{"trigger then newline", ".fyi\nRaid at noon", "Raid at noon"},
		{"trigger with no payload", ".fyi", ""},
		{"trigger with only spaces", "fyi   ", ""},
		{"no trigger at all", "Raid at noon", "Raid at noon"},
		{"trigger glued to a word is not a trigger", "fyibberish stays whole", "fyibberish stays whole"},
		{"surrounding whitespace", "  .fyi Raid at noon  ", "Raid at noon"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripPayload(tt.content))
		})
	}
}

func TestBuildRelayText(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 18:30 UTC is 01:30PM in New York during DST.
	at := time.Date(2026, time.July, 4, 18, 30, 0, 0, time.UTC)
	got := BuildRelayText("<@111>", at, loc, "Raid at noon")
	assert.Equal(t, "**FYI from <@111> at 01:30PM on 2026 Jul 04:**\nRaid at noon", got)
}

func TestBuildRelayTextIsPure(t *testing.T) {
	at := time.Date(2026, time.January, 2, 9, 5, 0, 0, time.UTC)
	first := BuildRelayText("<@111>", at, time.UTC, "payload")
	second := BuildRelayText("<@111>", at, time.UTC, "payload")
	assert.Equal(t, first, second)
}

func TestBuildInterestedBlockEmpty(t *testing.T) {
	rsvp := models.Emoji{Kind: models.EmojiStandard, Name: "🙋"}
	got := BuildInterestedBlock(nil, rsvp)
	assert.Equal(t, "**Interested:**\n(none so far — react with 🙋 to be pinged about updates)", got)
}

func TestBuildInterestedBlockSortsByDisplayName(t *testing.T) {
	reactors := []Reactor{
		{UserID: "2", DisplayName: "zoe", Mention: "<@2>", Emoji: []string{"👍"}},
		{UserID: "1", DisplayName: "Alice", Mention: "<@1>", Emoji: []string{"🙋", "🎉"}},
		{UserID: "3", DisplayName: "bob", Mention: "<@3>", Emoji: []string{"🙋"}},
	}
	got := BuildInterestedBlock(reactors, models.Emoji{Kind: models.EmojiStandard, Name: "🙋"})
	assert.Equal(t, "**Interested:**\n<@1> (🙋, 🎉)\n<@3> (🙋)\n<@2> (👍)", got)
}

func TestBuildInterestedBlockDoesNotMutateInput(t *testing.T) {
	reactors := []Reactor{
		{UserID: "2", DisplayName: "zoe", Mention: "<@2>", Emoji: []string{"👍"}},
		{UserID: "1", DisplayName: "alice", Mention: "<@1>", Emoji: []string{"🙋"}},
	}
	BuildInterestedBlock(reactors, models.Emoji{Kind: models.EmojiStandard, Name: "🙋"})
	assert.Equal(t, "2", reactors[0].UserID)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "> one\n> two", Quote("one\ntwo"))
}

func TestBuildUpdatePing(t *testing.T) {
	got := BuildUpdatePing([]string{"<@2>", "<@3>"}, "<@1>", "**FYI...**\nnew text")
	assert.Equal(t, "<@2> <@3> the FYI you were interested in has been updated by <@1>:\n> **FYI...**\n> new text", got)
}

func TestBuildCancelPing(t *testing.T) {
	got := BuildCancelPing([]string{"<@1>", "<@2>"}, "**FYI...**\nlast text")
	assert.Equal(t, "<@1> <@2> the FYI you were interested in has been removed:\n> **FYI...**\n> last text", got)
}

func TestStrike(t *testing.T) {
	assert.Equal(t, "~~gone~~", Strike("gone"))
}
