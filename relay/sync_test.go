package relay

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyi-bot/database"
	"fyi-bot/models"
)

// syncFixture builds an enhanced FYI with a relay mirror and a chat mirror,
// then clears the recorded traffic so tests observe only what sync does.
func syncFixture(t *testing.T) (*database.Store, *fakeTransport, *Engine, *models.FYI) {
	t.Helper()
	store := newTestStore(t)
	ft := newFakeTransport()
	e := newTestEngine(store, ft)
	configureGuild(t, store)
	enableEnhanced(t, store, true)
	ft.putMessage(chatChannel, "src-1", ".fyi Raid at noon")
	require.NoError(t, e.HandleTrigger(testGuild, chatChannel, "src-1", "user-1", ".fyi Raid at noon"))

	f, _, err := store.Resolve(testGuild, chatChannel, "src-1")
	require.NoError(t, err)
	require.NotNil(t, f)
	ft.sends = nil
	ft.edits = nil
	ft.added = nil
	return store, ft, e, f
}

func TestHandleEditSyncsAllMirrorsWithOnePing(t *testing.T) {
	store, ft, e, f := syncFixture(t)

	ft.putMessage(chatChannel, "src-1", ".fyi Raid at 1pm")
	ft.react(relayChannel, f.RelayMessageID, stdEmoji("🙋"), &discordgo.User{ID: "u2", Username: "zoe"})

	require.NoError(t, e.HandleEdit(testGuild, chatChannel, "src-1"))

	newText := "**FYI from <@user-1> at 03:00PM on 2026 Mar 10:**\nRaid at 1pm"
	require.Len(t, ft.edits, 2, "every mirror gets the new text")
	for _, edit := range ft.edits {
		assert.Contains(t, edit.Content, newText)
		assert.Contains(t, edit.Content, "<@u2>")
	}

	pings := ft.sendsContaining("has been updated by <@user-1>")
	require.Len(t, pings, 1, "exactly one ping, not one per mirror")
	assert.Equal(t, chatChannel, pings[0].ChannelID)
	assert.Contains(t, pings[0].Content, "<@u2>")
	assert.Contains(t, pings[0].Content, "> "+"**FYI from <@user-1> at 03:00PM on 2026 Mar 10:**")
	assert.Len(t, ft.sends, 1)

	updated, _, err := store.Resolve(testGuild, chatChannel, "src-1")
	require.NoError(t, err)
	require.Len(t, updated.EditHistory, 2)
	assert.Equal(t, newText, updated.CurrentText())
	assert.Equal(t, []string{"u2"}, updated.Interested)
}

func TestHandleEditMirrorKeyIsIgnored(t *testing.T) {
	_, ft, e, f := syncFixture(t)

	require.NoError(t, e.HandleEdit(testGuild, relayChannel, f.RelayMessageID))

	assert.Empty(t, ft.edits)
	assert.Empty(t, ft.sends)
}

func TestHandleEditInactiveIsIgnored(t *testing.T) {
	store, ft, e, f := syncFixture(t)

	_, err := store.Deactivate(f.SourceRef())
	require.NoError(t, err)

	require.NoError(t, e.HandleEdit(testGuild, chatChannel, "src-1"))
	assert.Empty(t, ft.edits)
}

func TestHandleEditDeletedMirrorIsSkipped(t *testing.T) {
	_, ft, e, f := syncFixture(t)

	ft.putMessage(chatChannel, "src-1", ".fyi Raid at 1pm")
	ft.deleteMessage(chatChannel, f.ChatRelayMessageID)

	require.NoError(t, e.HandleEdit(testGuild, chatChannel, "src-1"))

	require.Len(t, ft.edits, 1)
	assert.Equal(t, f.RelayMessageID, ft.edits[0].MessageID)
}

func TestHandleEditDeletedSourceIsNoOp(t *testing.T) {
	_, ft, e, _ := syncFixture(t)

	ft.deleteMessage(chatChannel, "src-1")

	require.NoError(t, e.HandleEdit(testGuild, chatChannel, "src-1"))
	assert.Empty(t, ft.edits)
	assert.Empty(t, ft.sends)
}

func TestHandleEditPingSkipsCreatorOnlyAudience(t *testing.T) {
	_, ft, e, _ := syncFixture(t)

	ft.putMessage(chatChannel, "src-1", ".fyi Raid at 1pm")
	ft.react(chatChannel, "src-1", stdEmoji("🙋"), &discordgo.User{ID: "user-1", Username: "creator"})

	require.NoError(t, e.HandleEdit(testGuild, chatChannel, "src-1"))

	assert.Len(t, ft.edits, 2)
	assert.Empty(t, ft.sends, "the creator is never pinged about their own edit")
}

func TestHandleReactionUpdatesMirrorsWithoutPing(t *testing.T) {
	store, ft, e, f := syncFixture(t)

	ft.react(chatChannel, f.ChatRelayMessageID, stdEmoji("🙋"), &discordgo.User{ID: "u2", Username: "zoe"})

	require.NoError(t, e.HandleReaction(testGuild, chatChannel, f.ChatRelayMessageID, "u2"))

	require.Len(t, ft.edits, 2)
	for _, edit := range ft.edits {
		assert.Contains(t, edit.Content, "<@u2>")
	}
	assert.Empty(t, ft.sends, "reaction changes never ping")

	// The source text did not change, so the history gains no entry.
	updated, _, err := store.Resolve(testGuild, chatChannel, "src-1")
	require.NoError(t, err)
	assert.Len(t, updated.EditHistory, 1)
	assert.Equal(t, []string{"u2"}, updated.Interested)
}

func TestHandleReactionFromBotIsIgnored(t *testing.T) {
	_, ft, e, f := syncFixture(t)

	require.NoError(t, e.HandleReaction(testGuild, relayChannel, f.RelayMessageID, "bot"))
	assert.Empty(t, ft.edits)
}

func TestHandleReactionNonEnhancedIsIgnored(t *testing.T) {
	store := newTestStore(t)
	ft := newFakeTransport()
	e := newTestEngine(store, ft)
	configureGuild(t, store)
	ft.putMessage(chatChannel, "src-1", ".fyi Raid at noon")
	require.NoError(t, e.HandleTrigger(testGuild, chatChannel, "src-1", "user-1", ".fyi Raid at noon"))
	ft.edits = nil

	require.NoError(t, e.HandleReaction(testGuild, chatChannel, "src-1", "u2"))
	assert.Empty(t, ft.edits)
}

func TestHandleReactionUntrackedMessageIsIgnored(t *testing.T) {
	_, ft, e, _ := syncFixture(t)

	require.NoError(t, e.HandleReaction(testGuild, chatChannel, "unrelated", "u2"))
	assert.Empty(t, ft.edits)
}
