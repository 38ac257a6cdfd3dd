package handlers

import (
	"github.com/bwmarrin/discordgo"

	"fyi-bot/bot"
)

// InteractionCreate handles slash command interactions.
func InteractionCreate(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type == discordgo.InteractionApplicationCommand {
			CommandDispatcher(b, s, i)
		}
	}
}
