package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

const (
	ColorInfo  = 0x00ff00 // Green
	ColorWarn  = 0xffff00 // Yellow
	ColorError = 0xff0000 // Red
)

var session *discordgo.Session

// InitLogger initializes the logger with a Discord session.
func InitLogger(s *discordgo.Session) {
	session = s
}

// logChannelFor resolves the log channel for a guild. Falls back to the
// global admin channel; empty means logging to Discord is unconfigured.
func logChannelFor(guildID string) string {
	if channelID := viper.GetString("bot.logChannels." + guildID); channelID != "" {
		return channelID
	}
	return viper.GetString("bot.adminChannelId")
}

// GuildLog sends a log message to the guild's log channel. Fire-and-forget;
// a no-op (beyond the process log) when no channel is configured.
func GuildLog(level, guildID, module, details string) {
	channelID := logChannelFor(guildID)
	if session == nil || channelID == "" {
		log.Printf("[%s] Guild: %s, Module: %s, Details: %s", level, guildID, module, details)
		return
	}

	var color int
	switch level {
	case "INFO":
		color = ColorInfo
	case "WARN":
		color = ColorWarn
	case "ERROR":
		color = ColorError
	default:
		color = ColorInfo
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Log Level: %s", level),
		Color:     color,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Module",
				Value:  module,
				Inline: true,
			},
			{
				Name:  "Details",
				Value: details,
			},
		},
	}

	if _, err := session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Error sending log message to Discord: %v", err)
	}
}

// Info logs an informational message for a guild.
func Info(guildID, module, details string) {
	GuildLog("INFO", guildID, module, details)
}

// Warn logs a warning message for a guild.
func Warn(guildID, module, details string) {
	GuildLog("WARN", guildID, module, details)
}

// Error logs an error message for a guild.
func Error(guildID, module, details string) {
	GuildLog("ERROR", guildID, module, details)
}
