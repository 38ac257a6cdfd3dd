package relay

import (
	"fmt"
	"log"

	"fyi-bot/models"
)

// HandleEdit processes an edit notification for any tracked message. Edits
// to mirrors are ignored; mirrors are bot-authored, and treating their edits
// as source edits would feed the bot's own updates back into propagation.
func (e *Engine) HandleEdit(guildID, channelID, messageID string) error {
	cfg, err := e.store.GuildConfig(guildID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	f, resolved, err := e.store.Resolve(guildID, channelID, messageID)
	if err != nil {
		return err
	}
	if f == nil || resolved.Kind == models.KeyMirror || !f.Active {
		return nil
	}

	return e.sync(cfg, f, true)
}

// HandleReaction processes a reaction added to or removed from any tracked
// message. Reactions only matter in enhanced mode.
func (e *Engine) HandleReaction(guildID, channelID, messageID, userID string) error {
	if userID == e.t.BotUserID() {
		return nil
	}

	cfg, err := e.store.GuildConfig(guildID)
	if err != nil {
		return err
	}
	if cfg == nil || !cfg.Enhanced {
		return nil
	}

	f, _, err := e.store.Resolve(guildID, channelID, messageID)
	if err != nil {
		return err
	}
	if f == nil || !f.Active {
		return nil
	}

	return e.sync(cfg, f, false)
}

// sync re-renders the FYI from the current source content, re-aggregates the
// reactors, persists the new state and pushes the text to every mirror that
// still resolves. With ping set and enhanced mode on, exactly one update
// ping goes to the source channel, never one per mirror.
func (e *Engine) sync(cfg *models.GuildConfig, f *models.FYI, ping bool) error {
	source, err := e.t.Message(f.ChatChannelID, f.CommandMessageID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to fetch source message %s: %w", f.CommandMessageID, err)
	}

	payload := StripPayload(source.Content)
	if payload == "" {
		return nil
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	relayText := BuildRelayText(mention(f.CreatorID), f.CreatedAt, loc, payload)
	reactors, err := e.agg.Reactors(f)
	if err != nil {
		return err
	}

	mirrorText := relayText
	if cfg.Enhanced || len(reactors) > 0 {
		mirrorText = ComposeMirrorText(relayText, BuildInterestedBlock(reactors, cfg.RSVPEmoji))
	}

	ids := make([]string, 0, len(reactors))
	for _, r := range reactors {
		ids = append(ids, r.UserID)
	}
	if err := e.store.UpdateContent(f.SourceRef(), relayText, ids); err != nil {
		return err
	}

	for _, ref := range f.MirrorRefs() {
		if _, err := e.t.Edit(ref.ChannelID, ref.MessageID, mirrorText); err != nil {
			if IsNotFound(err) {
				continue
			}
			log.Printf("Failed to update mirror %s in channel %s: %v", ref.MessageID, ref.ChannelID, err)
		}
	}

	if ping && cfg.Enhanced {
		audience := audienceMentions(reactors, f.CreatorID)
		if len(audience) > 0 {
			pingText := BuildUpdatePing(audience, mention(f.CreatorID), relayText)
			if _, err := e.t.Send(f.ChatChannelID, pingText); err != nil && !IsNotFound(err) {
				log.Printf("Failed to send update ping for FYI %s: %v", f.CommandMessageID, err)
			}
		}
	}
	return nil
}

// audienceMentions returns the mentions of every reactor except the creator.
func audienceMentions(reactors []Reactor, creatorID string) []string {
	var mentions []string
	for _, r := range reactors {
		if r.UserID == creatorID {
			continue
		}
		mentions = append(mentions, r.Mention)
	}
	return mentions
}
