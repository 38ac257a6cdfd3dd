package relay

import (
	"fmt"
	"log"
	"time"

	"fyi-bot/database"
	"fyi-bot/models"
)

// Engine drives announcement relay, synchronization, aggregation and
// cancellation for FYIs.
type Engine struct {
	store *database.Store
	t     Transport
	agg   *Aggregator
	now   func() time.Time
}

// NewEngine creates the relay engine.
func NewEngine(store *database.Store, t Transport) *Engine {
	return &Engine{
		store: store,
		t:     t,
		agg:   NewAggregator(t),
		now:   time.Now,
	}
}

// HandleTrigger processes a message that may be an FYI trigger. An
// unconfigured guild, an unmapped channel or an empty payload is a normal
// non-match and a silent no-op, never an error.
func (e *Engine) HandleTrigger(guildID, channelID, messageID, authorID, content string) error {
	cfg, err := e.store.GuildConfig(guildID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	mapping, err := e.store.ChannelMapping(guildID, channelID)
	if err != nil {
		return err
	}
	if mapping == nil {
		return nil
	}

	payload := StripPayload(content)
	if payload == "" {
		return nil
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	timestamp := e.now().UTC()
	relayText := BuildRelayText(mention(authorID), timestamp, loc, payload)
	mirrorText := relayText
	if cfg.Enhanced {
		mirrorText = ComposeMirrorText(relayText, BuildInterestedBlock(nil, cfg.RSVPEmoji))
	}

	relayMessage, err := e.t.Send(mapping.RelayChannelID, mirrorText)
	if err != nil {
		return fmt.Errorf("failed to post relay message to channel %s: %w", mapping.RelayChannelID, err)
	}

	chatRelayMessageID := ""
	if cfg.RelayToChat {
		chatRelayMessage, err := e.t.Send(channelID, mirrorText)
		if err != nil {
			return fmt.Errorf("failed to post chat relay message to channel %s: %w", channelID, err)
		}
		chatRelayMessageID = chatRelayMessage.ID
	}

	var expiry *time.Time
	if mapping.TimeoutHours != nil {
		t := timestamp.Add(time.Duration(*mapping.TimeoutHours) * time.Hour)
		expiry = &t
	}

	f := &models.FYI{
		GuildID:            guildID,
		ChatChannelID:      channelID,
		CommandMessageID:   messageID,
		CreatorID:          authorID,
		CreatedAt:          timestamp,
		Expiry:             expiry,
		RelayChannelID:     mapping.RelayChannelID,
		RelayMessageID:     relayMessage.ID,
		ChatRelayMessageID: chatRelayMessageID,
		EditHistory:        []string{relayText},
		Active:             true,
	}
	if err := e.store.CreateFYI(f); err != nil {
		return err
	}

	e.addReaction(f.SourceRef(), cfg.FYIEmoji)
	if cfg.Enhanced {
		for _, ref := range f.AllRefs() {
			e.addReaction(ref, cfg.RSVPEmoji)
		}
	}
	return nil
}

// addReaction seeds a reaction, tolerating targets that vanished in the
// meantime.
func (e *Engine) addReaction(ref models.MessageRef, emoji models.Emoji) {
	if emoji.IsZero() {
		return
	}
	if err := e.t.AddReaction(ref.ChannelID, ref.MessageID, emoji); err != nil && !IsNotFound(err) {
		log.Printf("Failed to add reaction %s to message %s: %v", emoji, ref.MessageID, err)
	}
}
