package handlers

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"fyi-bot/bot"
)

// isFYITrigger reports whether a message invokes the FYI trigger command
// (prefix + "fyi", case-insensitive, followed by a word boundary).
func isFYITrigger(content, prefix string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(content))
	trigger := strings.ToLower(prefix) + "fyi"
	if !strings.HasPrefix(trimmed, trigger) {
		return false
	}
	rest := trimmed[len(trigger):]
	return rest == "" || strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, "\n")
}

// MessageCreate routes new messages into the FYI trigger path.
func MessageCreate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Ignore all messages created by bots, including this one.
		if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
			return
		}
		if m.GuildID == "" {
			return
		}

		prefix := viper.GetString("bot.prefix")
		if !isFYITrigger(m.Content, prefix) {
			return
		}

		if err := b.Engine.HandleTrigger(m.GuildID, m.ChannelID, m.ID, m.Author.ID, m.Content); err != nil {
			log.Printf("Error handling FYI trigger for message %s: %v", m.ID, err)
		}
	}
}

// MessageUpdate routes edit events into the synchronization engine.
func MessageUpdate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageUpdate) {
	return func(s *discordgo.Session, m *discordgo.MessageUpdate) {
		guildID := m.GuildID
		if guildID == "" {
			channel, err := s.State.Channel(m.ChannelID)
			if err != nil || channel.GuildID == "" {
				return
			}
			guildID = channel.GuildID
		}

		if err := b.Engine.HandleEdit(guildID, m.ChannelID, m.ID); err != nil {
			log.Printf("Error handling edit for message %s: %v", m.ID, err)
		}
	}
}

// MessageDelete routes single-message deletions into the cancellation path.
func MessageDelete(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageDelete) {
	return func(s *discordgo.Session, m *discordgo.MessageDelete) {
		if m.GuildID == "" {
			return
		}
		if err := b.Engine.HandleDelete(m.GuildID, m.ChannelID, m.ID); err != nil {
			log.Printf("Error handling delete for message %s: %v", m.ID, err)
		}
	}
}

// MessageDeleteBulk routes bulk deletions into the silent deactivation path.
func MessageDeleteBulk(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageDeleteBulk) {
	return func(s *discordgo.Session, m *discordgo.MessageDeleteBulk) {
		if m.GuildID == "" {
			return
		}
		if err := b.Engine.HandleBulkDelete(m.GuildID, m.ChannelID, m.Messages); err != nil {
			log.Printf("Error handling bulk delete in channel %s: %v", m.ChannelID, err)
		}
	}
}

// ReactionAdd routes added reactions into the RSVP aggregation path.
func ReactionAdd(b *bot.Bot) func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	return func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if r.GuildID == "" {
			return
		}
		if err := b.Engine.HandleReaction(r.GuildID, r.ChannelID, r.MessageID, r.UserID); err != nil {
			log.Printf("Error handling reaction add on message %s: %v", r.MessageID, err)
		}
	}
}

// ReactionRemove routes removed reactions into the RSVP aggregation path.
func ReactionRemove(b *bot.Bot) func(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	return func(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
		if r.GuildID == "" {
			return
		}
		if err := b.Engine.HandleReaction(r.GuildID, r.ChannelID, r.MessageID, r.UserID); err != nil {
			log.Printf("Error handling reaction remove on message %s: %v", r.MessageID, err)
		}
	}
}
