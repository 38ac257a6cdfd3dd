package command

import "github.com/bwmarrin/discordgo"

// ConfigureFYICommand defines the structure for the /fyi-configure command.
type ConfigureFYICommand struct{}

// Definition returns the application command definition.
func (c *ConfigureFYICommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-configure",
		Description: "Enable FYI functionality for this guild",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "emoji",
				Description: "The acknowledgement emoji added to each FYI",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "timezone",
				Description: "The guild's timezone (e.g. America/Vancouver)",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
		},
	}
}

// DisableFYICommand defines the structure for the /fyi-disable command.
type DisableFYICommand struct{}

// Definition returns the application command definition.
func (c *DisableFYICommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-disable",
		Description: "Disable FYI functionality for this guild",
	}
}

// ConfigureEnhancedFYICommand defines the structure for the /fyi-configure-enhanced command.
type ConfigureEnhancedFYICommand struct{}

// Definition returns the application command definition.
func (c *ConfigureEnhancedFYICommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-configure-enhanced",
		Description: "Enable RSVP aggregation and cancellation marking",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "rsvp_emoji",
				Description: "The emoji members react with to RSVP",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "cancelled_emoji",
				Description: "The emoji marking a cancelled FYI",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "relay_to_chat",
				Description: "Also post a copy of each FYI back into its source channel",
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Required:    true,
			},
		},
	}
}

// DisableEnhancedFYICommand defines the structure for the /fyi-disable-enhanced command.
type DisableEnhancedFYICommand struct{}

// Definition returns the application command definition.
func (c *DisableEnhancedFYICommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-disable-enhanced",
		Description: "Disable enhanced FYI functionality, keeping the base configuration",
	}
}

// MapChannelCommand defines the structure for the /fyi-map-channel command.
type MapChannelCommand struct{}

// Definition returns the application command definition.
func (c *MapChannelCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-map-channel",
		Description: "Relay FYIs from a chat channel to an FYI channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:         "chat_channel",
				Description:  "The channel FYIs are posted from",
				Type:         discordgo.ApplicationCommandOptionChannel,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				Required:     true,
			},
			{
				Name:         "relay_channel",
				Description:  "The channel FYIs are relayed to",
				Type:         discordgo.ApplicationCommandOptionChannel,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				Required:     true,
			},
			{
				Name:        "timeout_hours",
				Description: "Hours until FYIs from this channel expire (omit for no expiry)",
				Type:        discordgo.ApplicationCommandOptionInteger,
				Required:    false,
			},
		},
	}
}

// MapCategoryCommand defines the structure for the /fyi-map-category command.
type MapCategoryCommand struct{}

// Definition returns the application command definition.
func (c *MapCategoryCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-map-category",
		Description: "Relay FYIs from every channel in a category to an FYI channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:         "category",
				Description:  "The category whose channels post FYIs",
				Type:         discordgo.ApplicationCommandOptionChannel,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
				Required:     true,
			},
			{
				Name:         "relay_channel",
				Description:  "The channel FYIs are relayed to",
				Type:         discordgo.ApplicationCommandOptionChannel,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				Required:     true,
			},
			{
				Name:        "timeout_hours",
				Description: "Hours until FYIs from these channels expire (omit for no expiry)",
				Type:        discordgo.ApplicationCommandOptionInteger,
				Required:    false,
			},
		},
	}
}

// UnmapChannelCommand defines the structure for the /fyi-unmap-channel command.
type UnmapChannelCommand struct{}

// Definition returns the application command definition.
func (c *UnmapChannelCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-unmap-channel",
		Description: "Stop relaying FYIs from a chat channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:         "chat_channel",
				Description:  "The channel to unmap",
				Type:         discordgo.ApplicationCommandOptionChannel,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				Required:     true,
			},
		},
	}
}

// UnmapCategoryCommand defines the structure for the /fyi-unmap-category command.
type UnmapCategoryCommand struct{}

// Definition returns the application command definition.
func (c *UnmapCategoryCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-unmap-category",
		Description: "Remove a category's FYI default for newly created channels",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:         "category",
				Description:  "The category to unmap",
				Type:         discordgo.ApplicationCommandOptionChannel,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
				Required:     true,
			},
		},
	}
}

// UnmapAllCommand defines the structure for the /fyi-unmap-all command.
type UnmapAllCommand struct{}

// Definition returns the application command definition.
func (c *UnmapAllCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-unmap-all",
		Description: "Remove all channel and category FYI mappings",
	}
}

// ShowConfigCommand defines the structure for the /fyi-show-config command.
type ShowConfigCommand struct{}

// Definition returns the application command definition.
func (c *ShowConfigCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-show-config",
		Description: "Show the guild's FYI configuration and mappings",
	}
}

// ListInactiveCommand defines the structure for the /fyi-list-inactive command.
type ListInactiveCommand struct{}

// Definition returns the application command definition.
func (c *ListInactiveCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-list-inactive",
		Description: "List cancelled and deactivated FYIs awaiting purge",
	}
}

// ListExpiredCommand defines the structure for the /fyi-list-expired command.
type ListExpiredCommand struct{}

// Definition returns the application command definition.
func (c *ListExpiredCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-list-expired",
		Description: "List FYIs whose expiry has passed",
	}
}

// CleanUpCommand defines the structure for the /fyi-clean-up command.
type CleanUpCommand struct{}

// Definition returns the application command definition.
func (c *CleanUpCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "fyi-clean-up",
		Description: "Purge this guild's expired FYIs now",
	}
}
