package relay

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"fyi-bot/models"
)

// Transport is the slice of the chat platform the relay engine uses. All
// calls may fail with a not-found condition when the target was deleted
// out-of-band; callers check IsNotFound and skip.
type Transport interface {
	Send(channelID, content string) (*discordgo.Message, error)
	Edit(channelID, messageID, content string) (*discordgo.Message, error)
	Message(channelID, messageID string) (*discordgo.Message, error)
	AddReaction(channelID, messageID string, emoji models.Emoji) error
	ReactionUsers(channelID, messageID, emojiAPIName string) ([]*discordgo.User, error)
	Member(guildID, userID string) (*discordgo.Member, error)
	BotUserID() string
}

// SessionTransport adapts a discordgo session to the Transport interface.
type SessionTransport struct {
	s *discordgo.Session
}

// NewSessionTransport wraps an open discordgo session.
func NewSessionTransport(s *discordgo.Session) *SessionTransport {
	return &SessionTransport{s: s}
}

func (t *SessionTransport) Send(channelID, content string) (*discordgo.Message, error) {
	return t.s.ChannelMessageSend(channelID, content)
}

func (t *SessionTransport) Edit(channelID, messageID, content string) (*discordgo.Message, error) {
	return t.s.ChannelMessageEdit(channelID, messageID, content)
}

func (t *SessionTransport) Message(channelID, messageID string) (*discordgo.Message, error) {
	return t.s.ChannelMessage(channelID, messageID)
}

func (t *SessionTransport) AddReaction(channelID, messageID string, emoji models.Emoji) error {
	return t.s.MessageReactionAdd(channelID, messageID, emoji.APIName())
}

func (t *SessionTransport) ReactionUsers(channelID, messageID, emojiAPIName string) ([]*discordgo.User, error) {
	return t.s.MessageReactions(channelID, messageID, emojiAPIName, 100, "", "")
}

func (t *SessionTransport) Member(guildID, userID string) (*discordgo.Member, error) {
	if member, err := t.s.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	return t.s.GuildMember(guildID, userID)
}

func (t *SessionTransport) BotUserID() string {
	if t.s.State != nil && t.s.State.User != nil {
		return t.s.State.User.ID
	}
	return ""
}

// IsNotFound reports whether err means the target message or channel no
// longer exists on the platform.
func IsNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
