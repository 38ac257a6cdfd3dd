package relay

import (
	"log"

	"fyi-bot/models"
)

// HandleDelete processes a single-message delete event for any tracked
// message: the FYI is cancelled. The record is kept (inactive) so the
// cancellation is visible to list-inactive and the expiry sweep can purge it
// later; remaining mirrors are struck through, the cancelled emoji is applied
// where still reachable, and one ping names everyone who had shown interest.
func (e *Engine) HandleDelete(guildID, channelID, messageID string) error {
	cfg, err := e.store.GuildConfig(guildID)
	if err != nil {
		return err
	}

	f, _, err := e.store.Resolve(guildID, channelID, messageID)
	if err != nil {
		return err
	}
	if f == nil {
		return nil
	}

	// Claim the transition first; a concurrent delete event for another
	// copy of the same FYI finds it already inactive and stops here.
	changed, err := e.store.Deactivate(f.SourceRef())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	for _, ref := range f.MirrorRefs() {
		msg, err := e.t.Message(ref.ChannelID, ref.MessageID)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			log.Printf("Failed to fetch mirror %s for cancellation: %v", ref.MessageID, err)
			continue
		}
		if _, err := e.t.Edit(ref.ChannelID, ref.MessageID, Strike(msg.Content)); err != nil && !IsNotFound(err) {
			log.Printf("Failed to strike mirror %s: %v", ref.MessageID, err)
		}
	}

	if cfg != nil && !cfg.CancelledEmoji.IsZero() {
		for _, ref := range f.AllRefs() {
			e.addReaction(ref, cfg.CancelledEmoji)
		}
	}

	audience := cancelAudience(f)
	if len(audience) > 0 {
		pingText := BuildCancelPing(audience, f.CurrentText())
		if _, err := e.t.Send(f.ChatChannelID, pingText); err != nil && !IsNotFound(err) {
			log.Printf("Failed to send cancellation ping for FYI %s: %v", f.CommandMessageID, err)
		}
	}
	return nil
}

// HandleBulkDelete deactivates every FYI whose source message is among the
// bulk-deleted ones. Bulk deletions are moderation actions, so no audience is
// notified; the records are retained for a later purge.
func (e *Engine) HandleBulkDelete(guildID, channelID string, messageIDs []string) error {
	fyis, err := e.store.QueryByKeys(guildID, channelID, messageIDs)
	if err != nil {
		return err
	}
	for i := range fyis {
		if _, err := e.store.Deactivate(fyis[i].SourceRef()); err != nil {
			return err
		}
	}
	return nil
}

// cancelAudience is the creator plus everyone who had reacted, deduplicated.
func cancelAudience(f *models.FYI) []string {
	seen := map[string]bool{f.CreatorID: true}
	mentions := []string{mention(f.CreatorID)}
	for _, id := range f.Interested {
		if seen[id] {
			continue
		}
		seen[id] = true
		mentions = append(mentions, mention(id))
	}
	return mentions
}
