package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"fyi-bot/bot"
	"fyi-bot/utils"
)

// ChannelCreate applies a category's FYI default mapping to newly created
// text channels. The default is copied, not linked: unmapping the category
// later leaves the channel's mapping in place.
func ChannelCreate(b *bot.Bot) func(s *discordgo.Session, c *discordgo.ChannelCreate) {
	return func(s *discordgo.Session, c *discordgo.ChannelCreate) {
		if c.GuildID == "" || c.Type != discordgo.ChannelTypeGuildText {
			return
		}

		applied, err := b.Store.ApplyCategoryDefault(c.GuildID, c.ID, c.ParentID)
		if err != nil {
			log.Printf("Error applying category default to channel %s: %v", c.ID, err)
			return
		}
		if applied {
			utils.Info(c.GuildID, "FYI", fmt.Sprintf(
				"New channel <#%s> belongs to a mapped category, so FYI functionality has been auto-enabled for it.", c.ID))
		}
	}
}
