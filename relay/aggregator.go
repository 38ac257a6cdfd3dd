package relay

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"fyi-bot/models"
)

// Aggregator computes the deduplicated interested-party set from reactions
// across every copy of an FYI.
type Aggregator struct {
	t Transport
}

// NewAggregator creates an aggregator on top of a transport.
func NewAggregator(t Transport) *Aggregator {
	return &Aggregator{t: t}
}

// Reactors unions the distinct non-bot users across all reaction emoji on
// all copies of the FYI. Any reaction on any copy counts as interest, not
// only the configured RSVP emoji. Copies that no longer exist are skipped.
// The full set is recomputed on every call; nothing is cached.
func (a *Aggregator) Reactors(f *models.FYI) ([]Reactor, error) {
	byUser := make(map[string]*Reactor)
	var order []string

	for _, ref := range f.AllRefs() {
		msg, err := a.t.Message(ref.ChannelID, ref.MessageID)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to fetch message %s: %w", ref.MessageID, err)
		}

		for _, reaction := range msg.Reactions {
			users, err := a.t.ReactionUsers(ref.ChannelID, ref.MessageID, reaction.Emoji.APIName())
			if err != nil {
				if IsNotFound(err) {
					continue
				}
				return nil, fmt.Errorf("failed to fetch reactions on message %s: %w", ref.MessageID, err)
			}

			display := reaction.Emoji.MessageFormat()
			for _, user := range users {
				if user.Bot || user.ID == a.t.BotUserID() {
					continue
				}
				r, ok := byUser[user.ID]
				if !ok {
					r = &Reactor{
						UserID:      user.ID,
						DisplayName: a.displayName(f.GuildID, user),
						Mention:     user.Mention(),
					}
					byUser[user.ID] = r
					order = append(order, user.ID)
				}
				if !contains(r.Emoji, display) {
					r.Emoji = append(r.Emoji, display)
				}
			}
		}
	}

	reactors := make([]Reactor, 0, len(order))
	for _, id := range order {
		reactors = append(reactors, *byUser[id])
	}
	return reactors, nil
}

// displayName prefers the member's guild nickname over global and account
// names. Member lookups are best-effort; the username covers a member who
// has already left.
func (a *Aggregator) displayName(guildID string, user *discordgo.User) string {
	if member, err := a.t.Member(guildID, user.ID); err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil && member.User.GlobalName != "" {
			return member.User.GlobalName
		}
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
