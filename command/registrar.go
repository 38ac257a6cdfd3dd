package command

import "github.com/bwmarrin/discordgo"

// Command is an interface for application commands.
type Command interface {
	Definition() *discordgo.ApplicationCommand
}

// AllCommands holds all the command instances.
var AllCommands = []Command{
	&ConfigureFYICommand{},
	&DisableFYICommand{},
	&ConfigureEnhancedFYICommand{},
	&DisableEnhancedFYICommand{},
	&MapChannelCommand{},
	&MapCategoryCommand{},
	&UnmapChannelCommand{},
	&UnmapCategoryCommand{},
	&UnmapAllCommand{},
	&ShowConfigCommand{},
	&ListInactiveCommand{},
	&ListExpiredCommand{},
	&CleanUpCommand{},
}
