package relay

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyi-bot/models"
)

func aggregatorFixture() (*fakeTransport, *Aggregator, *models.FYI) {
	ft := newFakeTransport()
	f := &models.FYI{
		GuildID:          testGuild,
		ChatChannelID:    chatChannel,
		CommandMessageID: "src-1",
		RelayChannelID:   relayChannel,
		RelayMessageID:   "mirror-1",
	}
	ft.putMessage(chatChannel, "src-1", ".fyi raid")
	ft.putMessage(relayChannel, "mirror-1", "relay copy")
	return ft, NewAggregator(ft), f
}

func TestReactorsUnionsUsersAcrossCopies(t *testing.T) {
	ft, agg, f := aggregatorFixture()

	alice := &discordgo.User{ID: "a", Username: "alice"}
	bob := &discordgo.User{ID: "b", Username: "bob"}
	ft.react(chatChannel, "src-1", stdEmoji("👍"), alice)
	ft.react(relayChannel, "mirror-1", stdEmoji("🙋"), alice, bob)

	reactors, err := agg.Reactors(f)
	require.NoError(t, err)
	require.Len(t, reactors, 2, "the same user on two copies counts once")

	assert.Equal(t, "a", reactors[0].UserID)
	assert.ElementsMatch(t, []string{"👍", "🙋"}, reactors[0].Emoji)
	assert.Equal(t, "b", reactors[1].UserID)
	assert.Equal(t, []string{"🙋"}, reactors[1].Emoji)
}

func TestReactorsAnyEmojiCounts(t *testing.T) {
	ft, agg, f := aggregatorFixture()

	// Not the configured RSVP emoji; interest is interest.
	ft.react(chatChannel, "src-1", stdEmoji("🔥"), &discordgo.User{ID: "a", Username: "alice"})

	reactors, err := agg.Reactors(f)
	require.NoError(t, err)
	require.Len(t, reactors, 1)
	assert.Equal(t, []string{"🔥"}, reactors[0].Emoji)
}

func TestReactorsExcludesBots(t *testing.T) {
	ft, agg, f := aggregatorFixture()

	ft.react(chatChannel, "src-1", stdEmoji("🙋"),
		&discordgo.User{ID: "bot", Username: "fyi-bot"},
		&discordgo.User{ID: "other-bot", Username: "helper", Bot: true},
		&discordgo.User{ID: "a", Username: "alice"},
	)

	reactors, err := agg.Reactors(f)
	require.NoError(t, err)
	require.Len(t, reactors, 1)
	assert.Equal(t, "a", reactors[0].UserID)
}

func TestReactorsSkipsDeletedCopies(t *testing.T) {
	ft, agg, f := aggregatorFixture()

	ft.react(chatChannel, "src-1", stdEmoji("🙋"), &discordgo.User{ID: "a", Username: "alice"})
	ft.deleteMessage(relayChannel, "mirror-1")

	reactors, err := agg.Reactors(f)
	require.NoError(t, err)
	require.Len(t, reactors, 1)
}

func TestReactorsPrefersGuildNickname(t *testing.T) {
	ft, agg, f := aggregatorFixture()

	alice := &discordgo.User{ID: "a", Username: "alice", GlobalName: "Alice Global"}
	ft.members[testGuild+"/a"] = &discordgo.Member{Nick: "Allie", User: alice}
	ft.react(chatChannel, "src-1", stdEmoji("🙋"), alice)

	bob := &discordgo.User{ID: "b", Username: "bob", GlobalName: "Bobby"}
	ft.react(relayChannel, "mirror-1", stdEmoji("🙋"), bob)

	reactors, err := agg.Reactors(f)
	require.NoError(t, err)
	require.Len(t, reactors, 2)
	assert.Equal(t, "Allie", reactors[0].DisplayName)
	// No member record, so the global name covers a member who left.
	assert.Equal(t, "Bobby", reactors[1].DisplayName)
}

func TestReactorsCustomEmojiDisplay(t *testing.T) {
	ft, agg, f := aggregatorFixture()

	custom := models.Emoji{Kind: models.EmojiCustom, Name: "boop", ID: "123"}
	ft.react(chatChannel, "src-1", custom, &discordgo.User{ID: "a", Username: "alice"})

	reactors, err := agg.Reactors(f)
	require.NoError(t, err)
	require.Len(t, reactors, 1)
	assert.Equal(t, []string{"<:boop:123>"}, reactors[0].Emoji)
}
