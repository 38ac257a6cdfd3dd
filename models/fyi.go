package models

import "time"

// MessageRef identifies one Discord message by its full composite key.
type MessageRef struct {
	GuildID   string
	ChannelID string
	MessageID string
}

// FYI is the persistent record for one announcement. It is keyed by the
// message that triggered it; the relay copies are tracked through mirror
// pointer records that refer back to this key.
type FYI struct {
	GuildID          string
	ChatChannelID    string
	CommandMessageID string

	CreatorID      string
	CreatedAt      time.Time
	Expiry         *time.Time // nil when the source channel has no timeout
	RelayChannelID string
	RelayMessageID string
	// ChatRelayMessageID is set only when relay-to-chat is enabled.
	ChatRelayMessageID string

	EditHistory []string
	Interested  []string
	Active      bool
}

// SourceRef returns the key of the triggering message.
func (f *FYI) SourceRef() MessageRef {
	return MessageRef{GuildID: f.GuildID, ChannelID: f.ChatChannelID, MessageID: f.CommandMessageID}
}

// RelayRef returns the key of the relay-channel mirror.
func (f *FYI) RelayRef() MessageRef {
	return MessageRef{GuildID: f.GuildID, ChannelID: f.RelayChannelID, MessageID: f.RelayMessageID}
}

// MirrorRefs returns the keys of all bot-authored copies.
func (f *FYI) MirrorRefs() []MessageRef {
	refs := []MessageRef{f.RelayRef()}
	if f.ChatRelayMessageID != "" {
		refs = append(refs, MessageRef{GuildID: f.GuildID, ChannelID: f.ChatChannelID, MessageID: f.ChatRelayMessageID})
	}
	return refs
}

// AllRefs returns the source key followed by every mirror key.
func (f *FYI) AllRefs() []MessageRef {
	return append([]MessageRef{f.SourceRef()}, f.MirrorRefs()...)
}

// CurrentText returns the most recent rendered content.
func (f *FYI) CurrentText() string {
	if len(f.EditHistory) == 0 {
		return ""
	}
	return f.EditHistory[len(f.EditHistory)-1]
}

// KeyKind says how an arbitrary (channel, message) key relates to the FYI it
// resolved to.
type KeyKind int

const (
	// KeySource means the key is the FYI's own triggering message.
	KeySource KeyKind = iota
	// KeyMirror means the key is one of the bot-authored copies and the
	// source key was reached through its back reference.
	KeyMirror
)

// ResolvedKey is the outcome of resolving an inbound event's key.
type ResolvedKey struct {
	Kind   KeyKind
	Source MessageRef
}

// ChannelMapping binds a chat channel to the relay channel its FYIs are
// posted to, with an optional expiry timeout.
type ChannelMapping struct {
	GuildID        string
	ChatChannelID  string
	RelayChannelID string
	TimeoutHours   *int64
}

// CategoryMapping is the creation-time default applied to channels created
// under a category. It is copied into a ChannelMapping, not followed live.
type CategoryMapping struct {
	GuildID        string
	CategoryID     string
	RelayChannelID string
	TimeoutHours   *int64
}

// GuildConfig is a guild's FYI configuration. The enhanced fields are zero
// unless Enhanced is set.
type GuildConfig struct {
	GuildID        string
	FYIEmoji       Emoji
	Timezone       string
	Enhanced       bool
	RSVPEmoji      Emoji
	CancelledEmoji Emoji
	RelayToChat    bool
}

// Location resolves the guild's configured timezone. The timezone is
// validated before it is stored, so failures here indicate a host with a
// missing tz database rather than bad configuration.
func (g *GuildConfig) Location() (*time.Location, error) {
	return time.LoadLocation(g.Timezone)
}
