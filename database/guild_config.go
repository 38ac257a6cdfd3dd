package database

import (
	"database/sql"
	"errors"
	"fmt"

	"fyi-bot/models"
)

// ErrNotConfigured is returned when an operation requires an existing guild
// FYI configuration and none is present.
var ErrNotConfigured = errors.New("FYI functionality is not configured")

// ConfigureFYI writes a fresh FYI configuration for the guild. Any previous
// configuration, including enhanced mode, is replaced.
func (st *Store) ConfigureFYI(guildID string, fyiEmoji models.Emoji, timezone string) error {
	query := `INSERT OR REPLACE INTO guild_fyi_config
        (guild_id, fyi_emoji, timezone, enhanced, rsvp_emoji, cancelled_emoji, relay_to_chat)
        VALUES (?, ?, ?, 0, '', '', 0)`

	if _, err := st.db.Exec(query, guildID, fyiEmoji.String(), timezone); err != nil {
		return fmt.Errorf("failed to configure FYI for guild %s: %w", guildID, err)
	}
	return nil
}

// DisableFYI removes the guild's FYI configuration entirely.
func (st *Store) DisableFYI(guildID string) error {
	if _, err := st.db.Exec(`DELETE FROM guild_fyi_config WHERE guild_id = ?`, guildID); err != nil {
		return fmt.Errorf("failed to disable FYI for guild %s: %w", guildID, err)
	}
	return nil
}

// ConfigureEnhancedFYI enables enhanced mode on an already-configured guild.
func (st *Store) ConfigureEnhancedFYI(guildID string, rsvpEmoji, cancelledEmoji models.Emoji, relayToChat bool) error {
	query := `UPDATE guild_fyi_config
        SET enhanced = 1, rsvp_emoji = ?, cancelled_emoji = ?, relay_to_chat = ?
        WHERE guild_id = ?`

	res, err := st.db.Exec(query, rsvpEmoji.String(), cancelledEmoji.String(), relayToChat, guildID)
	if err != nil {
		return fmt.Errorf("failed to configure enhanced FYI for guild %s: %w", guildID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to configure enhanced FYI for guild %s: %w", guildID, err)
	}
	if affected == 0 {
		return ErrNotConfigured
	}
	return nil
}

// DisableEnhancedFYI turns enhanced mode off, keeping the base configuration.
func (st *Store) DisableEnhancedFYI(guildID string) error {
	query := `UPDATE guild_fyi_config
        SET enhanced = 0, rsvp_emoji = '', cancelled_emoji = '', relay_to_chat = 0
        WHERE guild_id = ?`

	if _, err := st.db.Exec(query, guildID); err != nil {
		return fmt.Errorf("failed to disable enhanced FYI for guild %s: %w", guildID, err)
	}
	return nil
}

// GuildConfig returns the guild's FYI configuration, or nil if the guild is
// not configured.
func (st *Store) GuildConfig(guildID string) (*models.GuildConfig, error) {
	query := `SELECT guild_id, fyi_emoji, timezone, enhanced, rsvp_emoji, cancelled_emoji, relay_to_chat
        FROM guild_fyi_config WHERE guild_id = ?`

	var cfg models.GuildConfig
	var fyiEmoji, rsvpEmoji, cancelledEmoji string
	err := st.db.QueryRow(query, guildID).Scan(
		&cfg.GuildID, &fyiEmoji, &cfg.Timezone,
		&cfg.Enhanced, &rsvpEmoji, &cancelledEmoji, &cfg.RelayToChat,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query FYI config for guild %s: %w", guildID, err)
	}

	if cfg.FYIEmoji, err = models.ParseEmoji(fyiEmoji); err != nil {
		return nil, fmt.Errorf("corrupt fyi emoji for guild %s: %w", guildID, err)
	}
	if rsvpEmoji != "" {
		if cfg.RSVPEmoji, err = models.ParseEmoji(rsvpEmoji); err != nil {
			return nil, fmt.Errorf("corrupt rsvp emoji for guild %s: %w", guildID, err)
		}
	}
	if cancelledEmoji != "" {
		if cfg.CancelledEmoji, err = models.ParseEmoji(cancelledEmoji); err != nil {
			return nil, fmt.Errorf("corrupt cancelled emoji for guild %s: %w", guildID, err)
		}
	}
	return &cfg, nil
}

// AllGuildIDs returns every guild that has FYI functionality configured.
func (st *Store) AllGuildIDs() ([]string, error) {
	rows, err := st.db.Query(`SELECT guild_id FROM guild_fyi_config`)
	if err != nil {
		return nil, fmt.Errorf("failed to query configured guilds: %w", err)
	}
	defer rows.Close()

	var guilds []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan guild ID: %w", err)
		}
		guilds = append(guilds, id)
	}
	return guilds, rows.Err()
}
