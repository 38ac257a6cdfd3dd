package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"fyi-bot/bot"
)

// Register all handlers to the bot.
func Register(b *bot.Bot) {
	b.Session.AddHandler(InteractionCreate(b))
	b.Session.AddHandler(MessageCreate(b))
	b.Session.AddHandler(MessageUpdate(b))
	b.Session.AddHandler(MessageDelete(b))
	b.Session.AddHandler(MessageDeleteBulk(b))
	b.Session.AddHandler(ReactionAdd(b))
	b.Session.AddHandler(ReactionRemove(b))
	b.Session.AddHandler(ChannelCreate(b))

	// Add a ready handler to log when the bot is connected.
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
}
