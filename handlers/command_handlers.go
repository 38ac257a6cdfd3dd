package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"fyi-bot/bot"
	"fyi-bot/database"
	"fyi-bot/models"
	"fyi-bot/sweeper"
)

// maxListedFYIs bounds list command output to stay under the message size
// limit.
const maxListedFYIs = 20

// HandleConfigureFYI handles the logic for the /fyi-configure command.
// All inputs are validated before anything is written.
func HandleConfigureFYI(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := commandOptions(i)

	emoji, err := models.ParseEmoji(options["emoji"].StringValue())
	if err != nil {
		respondEphemeral(s, i, "🚫 That emoji could not be understood.")
		return
	}

	timezone := strings.TrimSpace(options["timezone"].StringValue())
	if _, err := time.LoadLocation(timezone); err != nil {
		respondEphemeral(s, i, fmt.Sprintf("🚫 Unrecognized timezone %q.", timezone))
		return
	}

	if err := b.Store.ConfigureFYI(i.GuildID, emoji, timezone); err != nil {
		respondEphemeral(s, i, "🚫 Failed to save the configuration.")
		return
	}
	respond(s, i, fmt.Sprintf("%s FYI functionality is now enabled.", invokerMention(i)))
}

// HandleDisableFYI handles the logic for the /fyi-disable command.
func HandleDisableFYI(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.Store.DisableFYI(i.GuildID); err != nil {
		respondEphemeral(s, i, "🚫 Failed to update the configuration.")
		return
	}
	respond(s, i, fmt.Sprintf("%s FYI functionality is now disabled.", invokerMention(i)))
}

// HandleConfigureEnhancedFYI handles the logic for the /fyi-configure-enhanced command.
func HandleConfigureEnhancedFYI(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := commandOptions(i)

	rsvpEmoji, err := models.ParseEmoji(options["rsvp_emoji"].StringValue())
	if err != nil {
		respondEphemeral(s, i, "🚫 The RSVP emoji could not be understood.")
		return
	}
	cancelledEmoji, err := models.ParseEmoji(options["cancelled_emoji"].StringValue())
	if err != nil {
		respondEphemeral(s, i, "🚫 The cancelled emoji could not be understood.")
		return
	}
	relayToChat := options["relay_to_chat"].BoolValue()

	err = b.Store.ConfigureEnhancedFYI(i.GuildID, rsvpEmoji, cancelledEmoji, relayToChat)
	if errors.Is(err, database.ErrNotConfigured) {
		respondEphemeral(s, i, "🚫 FYI functionality is not configured; run /fyi-configure first.")
		return
	}
	if err != nil {
		respondEphemeral(s, i, "🚫 Failed to save the configuration.")
		return
	}
	respond(s, i, fmt.Sprintf("%s Enhanced FYI functionality is now enabled.", invokerMention(i)))
}

// HandleDisableEnhancedFYI handles the logic for the /fyi-disable-enhanced command.
func HandleDisableEnhancedFYI(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.Store.DisableEnhancedFYI(i.GuildID); err != nil {
		respondEphemeral(s, i, "🚫 Failed to update the configuration.")
		return
	}
	respond(s, i, fmt.Sprintf("%s Enhanced FYI functionality is now disabled.", invokerMention(i)))
}

// mappingTimeout extracts and validates the optional timeout_hours option.
func mappingTimeout(options map[string]*discordgo.ApplicationCommandInteractionDataOption) (*int64, error) {
	opt, ok := options["timeout_hours"]
	if !ok {
		return nil, nil
	}
	hours := opt.IntValue()
	if hours <= 0 {
		return nil, fmt.Errorf("timeout must be a positive number of hours")
	}
	return &hours, nil
}

// HandleMapChannel handles the logic for the /fyi-map-channel command.
func HandleMapChannel(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := commandOptions(i)
	chatChannel := options["chat_channel"].ChannelValue(s)
	relayChannel := options["relay_channel"].ChannelValue(s)

	timeout, err := mappingTimeout(options)
	if err != nil {
		respondEphemeral(s, i, "🚫 "+err.Error()+".")
		return
	}

	mapping := models.ChannelMapping{
		GuildID:        i.GuildID,
		ChatChannelID:  chatChannel.ID,
		RelayChannelID: relayChannel.ID,
		TimeoutHours:   timeout,
	}
	if err := b.Store.MapChannel(mapping); err != nil {
		respondEphemeral(s, i, "🚫 Failed to save the mapping.")
		return
	}

	confirmation := fmt.Sprintf("%s FYIs from <#%s> will be posted in <#%s>.",
		invokerMention(i), chatChannel.ID, relayChannel.ID)
	if timeout != nil {
		confirmation += fmt.Sprintf(" They expire after %d hours.", *timeout)
	}
	respond(s, i, confirmation)
}

// HandleMapCategory handles the logic for the /fyi-map-category command.
// The mapping is stored as a default for future channels and also copied
// onto every existing text channel in the category.
func HandleMapCategory(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := commandOptions(i)
	category := options["category"].ChannelValue(s)
	relayChannel := options["relay_channel"].ChannelValue(s)

	timeout, err := mappingTimeout(options)
	if err != nil {
		respondEphemeral(s, i, "🚫 "+err.Error()+".")
		return
	}

	err = b.Store.MapCategory(models.CategoryMapping{
		GuildID:        i.GuildID,
		CategoryID:     category.ID,
		RelayChannelID: relayChannel.ID,
		TimeoutHours:   timeout,
	})
	if err != nil {
		respondEphemeral(s, i, "🚫 Failed to save the mapping.")
		return
	}

	channels, err := s.GuildChannels(i.GuildID)
	if err != nil {
		respondEphemeral(s, i, "🚫 The category default was saved, but listing its channels failed.")
		return
	}

	mapped := 0
	for _, channel := range channels {
		if channel.Type != discordgo.ChannelTypeGuildText || channel.ParentID != category.ID {
			continue
		}
		err := b.Store.MapChannel(models.ChannelMapping{
			GuildID:        i.GuildID,
			ChatChannelID:  channel.ID,
			RelayChannelID: relayChannel.ID,
			TimeoutHours:   timeout,
		})
		if err != nil {
			respondEphemeral(s, i, fmt.Sprintf("🚫 Failed to map channel <#%s>.", channel.ID))
			return
		}
		mapped++
	}

	respond(s, i, fmt.Sprintf("%s FYIs in all %d channels under **%s** will be posted in <#%s>.",
		invokerMention(i), mapped, category.Name, relayChannel.ID))
}

// HandleUnmapChannel handles the logic for the /fyi-unmap-channel command.
func HandleUnmapChannel(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := commandOptions(i)
	chatChannel := options["chat_channel"].ChannelValue(s)

	if err := b.Store.UnmapChannel(i.GuildID, chatChannel.ID); err != nil {
		respondEphemeral(s, i, "🚫 Failed to remove the mapping.")
		return
	}
	respond(s, i, fmt.Sprintf("%s FYIs from <#%s> will now be ignored.", invokerMention(i), chatChannel.ID))
}

// HandleUnmapCategory handles the logic for the /fyi-unmap-category command.
func HandleUnmapCategory(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := commandOptions(i)
	category := options["category"].ChannelValue(s)

	if err := b.Store.UnmapCategory(i.GuildID, category.ID); err != nil {
		respondEphemeral(s, i, "🚫 Failed to remove the mapping.")
		return
	}
	// Channels already mapped from this category keep their mappings; the
	// category default only affects channels created from now on.
	respond(s, i, fmt.Sprintf("%s New channels under **%s** will no longer be mapped automatically.",
		invokerMention(i), category.Name))
}

// HandleUnmapAll handles the logic for the /fyi-unmap-all command.
func HandleUnmapAll(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.Store.UnmapAll(i.GuildID); err != nil {
		respondEphemeral(s, i, "🚫 Failed to remove the mappings.")
		return
	}
	respond(s, i, fmt.Sprintf("%s FYIs from all channels will now be ignored.", invokerMention(i)))
}

// HandleShowConfig handles the logic for the /fyi-show-config command.
func HandleShowConfig(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cfg, err := b.Store.GuildConfig(i.GuildID)
	if err != nil {
		respondEphemeral(s, i, "🚫 Failed to read the configuration.")
		return
	}
	if cfg == nil {
		respond(s, i, fmt.Sprintf("%s FYI functionality is not configured.", invokerMention(i)))
		return
	}

	channelMappings, err := b.Store.ChannelMappings(i.GuildID)
	if err != nil {
		respondEphemeral(s, i, "🚫 Failed to read the channel mappings.")
		return
	}
	categoryMappings, err := b.Store.CategoryMappings(i.GuildID)
	if err != nil {
		respondEphemeral(s, i, "🚫 Failed to read the category mappings.")
		return
	}

	channelList := "(none)"
	if len(channelMappings) > 0 {
		var lines []string
		for _, m := range channelMappings {
			lines = append(lines, fmt.Sprintf("- <#%s> -> <#%s>%s", m.ChatChannelID, m.RelayChannelID, timeoutSuffix(m.TimeoutHours)))
		}
		channelList = strings.Join(lines, "\n")
	}

	categoryList := "(none)"
	if len(categoryMappings) > 0 {
		var lines []string
		for _, m := range categoryMappings {
			lines = append(lines, fmt.Sprintf("- <#%s> -> <#%s>%s", m.CategoryID, m.RelayChannelID, timeoutSuffix(m.TimeoutHours)))
		}
		categoryList = strings.Join(lines, "\n")
	}

	rsvpEmoji := "(none)"
	cancelledEmoji := "(none)"
	if cfg.Enhanced {
		rsvpEmoji = cfg.RSVPEmoji.String()
		cancelledEmoji = cfg.CancelledEmoji.String()
	}

	respond(s, i, fmt.Sprintf(
		"%s\nFYI emoji: %s\nTimezone: %s\nEnhanced FYI functionality: %t\nRelay to chat: %t\nRSVP emoji: %s\nCancelled emoji: %s\nChannel mappings:\n%s\nCategory mappings:\n%s",
		invokerMention(i), cfg.FYIEmoji, cfg.Timezone, cfg.Enhanced, cfg.RelayToChat,
		rsvpEmoji, cancelledEmoji, channelList, categoryList))
}

func timeoutSuffix(hours *int64) string {
	if hours == nil {
		return ""
	}
	return fmt.Sprintf(" (%dh timeout)", *hours)
}

// HandleListInactive handles the logic for the /fyi-list-inactive command.
func HandleListInactive(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	fyis, err := b.Store.QueryInactive(i.GuildID)
	if err != nil {
		respondEphemeral(s, i, "🚫 Failed to query inactive FYIs.")
		return
	}
	respond(s, i, fmt.Sprintf("%s Inactive FYIs:\n%s", invokerMention(i), formatFYIList(fyis)))
}

// HandleListExpired handles the logic for the /fyi-list-expired command.
func HandleListExpired(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	fyis, err := b.Store.QueryExpired(i.GuildID, time.Now().UTC())
	if err != nil {
		respondEphemeral(s, i, "🚫 Failed to query expired FYIs.")
		return
	}
	respond(s, i, fmt.Sprintf("%s Expired FYIs:\n%s", invokerMention(i), formatFYIList(fyis)))
}

// formatFYIList renders FYI records as a bounded bullet list.
func formatFYIList(fyis []models.FYI) string {
	if len(fyis) == 0 {
		return "(none)"
	}

	var lines []string
	for idx, f := range fyis {
		if idx == maxListedFYIs {
			lines = append(lines, fmt.Sprintf("… and %d more", len(fyis)-maxListedFYIs))
			break
		}
		summary := f.CurrentText()
		if cut := strings.IndexByte(summary, '\n'); cut >= 0 {
			summary = summary[:cut]
		}
		lines = append(lines, fmt.Sprintf("- <#%s> %s — %s",
			f.ChatChannelID, f.CreatedAt.Format("2006-01-02 15:04 MST"), summary))
	}
	return strings.Join(lines, "\n")
}

// HandleCleanUp handles the logic for the /fyi-clean-up command. It runs the
// same purge as the periodic sweep, synchronously, and reports the count.
func HandleCleanUp(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	purged, err := sweeper.SweepGuild(b.Store, i.GuildID, time.Now().UTC())
	if err != nil {
		respondEphemeral(s, i, fmt.Sprintf("🚫 Clean-up aborted after purging %d FYIs: %v", purged, err))
		return
	}
	respond(s, i, fmt.Sprintf("%s ✅ Purged %d expired FYIs.", invokerMention(i), purged))
}
