package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"fyi-bot/bot"
	"fyi-bot/utils"
)

// CommandDispatcher is the central handler for all application command
// interactions. Every FYI command is administrative, so the permission
// policy is checked before dispatching.
func CommandDispatcher(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	auth, err := utils.NewAuth()
	if err != nil {
		log.Printf("Failed to create auth instance: %v", err)
		return
	}

	if !auth.CanConfigure(i) {
		respondEphemeral(s, i, "🚫 You do not have permission to run this command.")
		return
	}

	switch i.ApplicationCommandData().Name {
	case "fyi-configure":
		HandleConfigureFYI(b, s, i)
	case "fyi-disable":
		HandleDisableFYI(b, s, i)
	case "fyi-configure-enhanced":
		HandleConfigureEnhancedFYI(b, s, i)
	case "fyi-disable-enhanced":
		HandleDisableEnhancedFYI(b, s, i)
	case "fyi-map-channel":
		HandleMapChannel(b, s, i)
	case "fyi-map-category":
		HandleMapCategory(b, s, i)
	case "fyi-unmap-channel":
		HandleUnmapChannel(b, s, i)
	case "fyi-unmap-category":
		HandleUnmapCategory(b, s, i)
	case "fyi-unmap-all":
		HandleUnmapAll(b, s, i)
	case "fyi-show-config":
		HandleShowConfig(b, s, i)
	case "fyi-list-inactive":
		HandleListInactive(b, s, i)
	case "fyi-list-expired":
		HandleListExpired(b, s, i)
	case "fyi-clean-up":
		HandleCleanUp(b, s, i)
	default:
		respondEphemeral(s, i, "🚫 Unknown command.")
	}
}

// respond sends a visible interaction response.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

// respondEphemeral sends an interaction response only the invoker sees.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}

// commandOptions maps an interaction's options by name.
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}
	return optionMap
}

// invokerMention returns the mention of the invoking member.
func invokerMention(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Mention()
	}
	return ""
}
