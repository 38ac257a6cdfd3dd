package utils

import (
	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// AuthConfig holds the authorization lists from configuration.
type AuthConfig struct {
	Developers  []string `mapstructure:"developers"`
	AdminsRoles []string `mapstructure:"adminsRoles"`
}

// Auth provides methods for authorization checks.
type Auth struct {
	config AuthConfig
}

// NewAuth creates a new Auth instance with the loaded configuration.
func NewAuth() (*Auth, error) {
	var config AuthConfig
	if err := viper.UnmarshalKey("commands.auth", &config); err != nil {
		return nil, err
	}
	return &Auth{config: config}, nil
}

// IsDeveloper checks if a user is a developer.
func (a *Auth) IsDeveloper(userID string) bool {
	for _, devID := range a.config.Developers {
		if userID == devID {
			return true
		}
	}
	return false
}

// IsAdmin checks if a member has an admin role or the Administrator
// permission in the guild.
func (a *Auth) IsAdmin(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	for _, adminRoleID := range a.config.AdminsRoles {
		for _, userRoleID := range member.Roles {
			if userRoleID == adminRoleID {
				return true
			}
		}
	}
	return false
}

// CanConfigure checks whether the invoking member may run administrative
// FYI commands in the guild.
func (a *Auth) CanConfigure(i *discordgo.InteractionCreate) bool {
	if i.Member == nil || i.Member.User == nil {
		return false
	}
	return a.IsDeveloper(i.Member.User.ID) || a.IsAdmin(i.Member)
}
