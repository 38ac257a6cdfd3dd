package relay

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"fyi-bot/database"
	"fyi-bot/models"
)

// newTestStore opens a fresh in-memory store.
func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	db, err := database.InitDB(":memory:")
	require.NoError(t, err)
	store := database.NewStore(db)
	t.Cleanup(func() { store.Close() })
	return store
}

func notFoundErr() error {
	return &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusNotFound}}
}

type sentMessage struct {
	ChannelID string
	MessageID string
	Content   string
}

type editedMessage struct {
	ChannelID string
	MessageID string
	Content   string
}

type addedReaction struct {
	ChannelID string
	MessageID string
	Emoji     models.Emoji
}

// fakeTransport is an in-memory Transport. Messages live in a map keyed by
// channel/message; anything absent behaves as deleted and yields a 404.
type fakeTransport struct {
	botID    string
	nextID   int
	messages map[string]*discordgo.Message
	reactors map[string]map[string][]*discordgo.User
	members  map[string]*discordgo.Member

	sends []sentMessage
	edits []editedMessage
	added []addedReaction
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		botID:    "bot",
		messages: make(map[string]*discordgo.Message),
		reactors: make(map[string]map[string][]*discordgo.User),
		members:  make(map[string]*discordgo.Member),
	}
}

func messageKey(channelID, messageID string) string {
	return channelID + "/" + messageID
}

func (ft *fakeTransport) Send(channelID, content string) (*discordgo.Message, error) {
	ft.nextID++
	msg := &discordgo.Message{
		ID:        fmt.Sprintf("sent-%d", ft.nextID),
		ChannelID: channelID,
		Content:   content,
	}
	ft.messages[messageKey(channelID, msg.ID)] = msg
	ft.sends = append(ft.sends, sentMessage{ChannelID: channelID, MessageID: msg.ID, Content: content})
	return msg, nil
}

func (ft *fakeTransport) Edit(channelID, messageID, content string) (*discordgo.Message, error) {
	msg, ok := ft.messages[messageKey(channelID, messageID)]
	if !ok {
		return nil, notFoundErr()
	}
	msg.Content = content
	ft.edits = append(ft.edits, editedMessage{ChannelID: channelID, MessageID: messageID, Content: content})
	return msg, nil
}

func (ft *fakeTransport) Message(channelID, messageID string) (*discordgo.Message, error) {
	msg, ok := ft.messages[messageKey(channelID, messageID)]
	if !ok {
		return nil, notFoundErr()
	}
	return msg, nil
}

func (ft *fakeTransport) AddReaction(channelID, messageID string, emoji models.Emoji) error {
	if _, ok := ft.messages[messageKey(channelID, messageID)]; !ok {
		return notFoundErr()
	}
	ft.added = append(ft.added, addedReaction{ChannelID: channelID, MessageID: messageID, Emoji: emoji})
	return nil
}

func (ft *fakeTransport) ReactionUsers(channelID, messageID, emojiAPIName string) ([]*discordgo.User, error) {
	byEmoji, ok := ft.reactors[messageKey(channelID, messageID)]
	if !ok {
		return nil, nil
	}
	return byEmoji[emojiAPIName], nil
}

func (ft *fakeTransport) Member(guildID, userID string) (*discordgo.Member, error) {
	member, ok := ft.members[guildID+"/"+userID]
	if !ok {
		return nil, notFoundErr()
	}
	return member, nil
}

func (ft *fakeTransport) BotUserID() string {
	return ft.botID
}

// putMessage seeds a message that exists on the platform, such as a user's
// source message.
func (ft *fakeTransport) putMessage(channelID, messageID, content string) *discordgo.Message {
	msg := &discordgo.Message{ID: messageID, ChannelID: channelID, Content: content}
	ft.messages[messageKey(channelID, messageID)] = msg
	return msg
}

// deleteMessage makes a message behave as deleted out-of-band.
func (ft *fakeTransport) deleteMessage(channelID, messageID string) {
	delete(ft.messages, messageKey(channelID, messageID))
}

// react records users reacting with one emoji on a message.
func (ft *fakeTransport) react(channelID, messageID string, emoji models.Emoji, users ...*discordgo.User) {
	k := messageKey(channelID, messageID)
	msg := ft.messages[k]
	de := &discordgo.Emoji{Name: emoji.Name, ID: emoji.ID}
	msg.Reactions = append(msg.Reactions, &discordgo.MessageReactions{Emoji: de, Count: len(users)})
	if ft.reactors[k] == nil {
		ft.reactors[k] = make(map[string][]*discordgo.User)
	}
	ft.reactors[k][de.APIName()] = users
}

// sendsContaining filters recorded sends by a substring.
func (ft *fakeTransport) sendsContaining(substr string) []sentMessage {
	var out []sentMessage
	for _, s := range ft.sends {
		if strings.Contains(s.Content, substr) {
			out = append(out, s)
		}
	}
	return out
}
