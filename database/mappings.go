package database

import (
	"database/sql"
	"fmt"

	"fyi-bot/models"
)

// MapChannel registers or replaces a chat-channel-to-relay-channel mapping.
func (st *Store) MapChannel(m models.ChannelMapping) error {
	query := `INSERT OR REPLACE INTO channel_mappings
        (guild_id, chat_channel_id, relay_channel_id, timeout_hours)
        VALUES (?, ?, ?, ?)`

	if _, err := st.db.Exec(query, m.GuildID, m.ChatChannelID, m.RelayChannelID, nullableInt64(m.TimeoutHours)); err != nil {
		return fmt.Errorf("failed to map channel %s: %w", m.ChatChannelID, err)
	}
	return nil
}

// UnmapChannel removes the mapping for a chat channel.
func (st *Store) UnmapChannel(guildID, chatChannelID string) error {
	query := `DELETE FROM channel_mappings WHERE guild_id = ? AND chat_channel_id = ?`
	if _, err := st.db.Exec(query, guildID, chatChannelID); err != nil {
		return fmt.Errorf("failed to unmap channel %s: %w", chatChannelID, err)
	}
	return nil
}

// ChannelMapping returns the mapping for a chat channel, or nil if the
// channel is unmapped.
func (st *Store) ChannelMapping(guildID, chatChannelID string) (*models.ChannelMapping, error) {
	query := `SELECT guild_id, chat_channel_id, relay_channel_id, timeout_hours
        FROM channel_mappings WHERE guild_id = ? AND chat_channel_id = ?`

	var m models.ChannelMapping
	var timeout sql.NullInt64
	err := st.db.QueryRow(query, guildID, chatChannelID).Scan(&m.GuildID, &m.ChatChannelID, &m.RelayChannelID, &timeout)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query mapping for channel %s: %w", chatChannelID, err)
	}
	if timeout.Valid {
		m.TimeoutHours = &timeout.Int64
	}
	return &m, nil
}

// ChannelMappings returns all channel mappings for a guild.
func (st *Store) ChannelMappings(guildID string) ([]models.ChannelMapping, error) {
	query := `SELECT guild_id, chat_channel_id, relay_channel_id, timeout_hours
        FROM channel_mappings WHERE guild_id = ? ORDER BY chat_channel_id`

	rows, err := st.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query channel mappings for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	var mappings []models.ChannelMapping
	for rows.Next() {
		var m models.ChannelMapping
		var timeout sql.NullInt64
		if err := rows.Scan(&m.GuildID, &m.ChatChannelID, &m.RelayChannelID, &timeout); err != nil {
			return nil, fmt.Errorf("failed to scan channel mapping: %w", err)
		}
		if timeout.Valid {
			m.TimeoutHours = &timeout.Int64
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// MapCategory registers or replaces a category default mapping.
func (st *Store) MapCategory(m models.CategoryMapping) error {
	query := `INSERT OR REPLACE INTO category_mappings
        (guild_id, category_id, relay_channel_id, timeout_hours)
        VALUES (?, ?, ?, ?)`

	if _, err := st.db.Exec(query, m.GuildID, m.CategoryID, m.RelayChannelID, nullableInt64(m.TimeoutHours)); err != nil {
		return fmt.Errorf("failed to map category %s: %w", m.CategoryID, err)
	}
	return nil
}

// UnmapCategory removes a category default mapping. Channel mappings that
// were copied from it are unaffected.
func (st *Store) UnmapCategory(guildID, categoryID string) error {
	query := `DELETE FROM category_mappings WHERE guild_id = ? AND category_id = ?`
	if _, err := st.db.Exec(query, guildID, categoryID); err != nil {
		return fmt.Errorf("failed to unmap category %s: %w", categoryID, err)
	}
	return nil
}

// CategoryMapping returns the default mapping for a category, or nil.
func (st *Store) CategoryMapping(guildID, categoryID string) (*models.CategoryMapping, error) {
	query := `SELECT guild_id, category_id, relay_channel_id, timeout_hours
        FROM category_mappings WHERE guild_id = ? AND category_id = ?`

	var m models.CategoryMapping
	var timeout sql.NullInt64
	err := st.db.QueryRow(query, guildID, categoryID).Scan(&m.GuildID, &m.CategoryID, &m.RelayChannelID, &timeout)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query mapping for category %s: %w", categoryID, err)
	}
	if timeout.Valid {
		m.TimeoutHours = &timeout.Int64
	}
	return &m, nil
}

// CategoryMappings returns all category default mappings for a guild.
func (st *Store) CategoryMappings(guildID string) ([]models.CategoryMapping, error) {
	query := `SELECT guild_id, category_id, relay_channel_id, timeout_hours
        FROM category_mappings WHERE guild_id = ? ORDER BY category_id`

	rows, err := st.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category mappings for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	var mappings []models.CategoryMapping
	for rows.Next() {
		var m models.CategoryMapping
		var timeout sql.NullInt64
		if err := rows.Scan(&m.GuildID, &m.CategoryID, &m.RelayChannelID, &timeout); err != nil {
			return nil, fmt.Errorf("failed to scan category mapping: %w", err)
		}
		if timeout.Valid {
			m.TimeoutHours = &timeout.Int64
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// UnmapAll removes every channel and category mapping for a guild in one
// transaction.
func (st *Store) UnmapAll(guildID string) error {
	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin unmap-all transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM channel_mappings WHERE guild_id = ?`, guildID); err != nil {
		return fmt.Errorf("failed to delete channel mappings for guild %s: %w", guildID, err)
	}
	if _, err := tx.Exec(`DELETE FROM category_mappings WHERE guild_id = ?`, guildID); err != nil {
		return fmt.Errorf("failed to delete category mappings for guild %s: %w", guildID, err)
	}
	return tx.Commit()
}

// ApplyCategoryDefault copies a category's default mapping onto a newly
// created channel. An explicit channel mapping always takes precedence, so an
// existing one is never overwritten. Reports whether a mapping was created.
func (st *Store) ApplyCategoryDefault(guildID, channelID, categoryID string) (bool, error) {
	if categoryID == "" {
		return false, nil
	}
	category, err := st.CategoryMapping(guildID, categoryID)
	if err != nil {
		return false, err
	}
	if category == nil {
		return false, nil
	}
	existing, err := st.ChannelMapping(guildID, channelID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	err = st.MapChannel(models.ChannelMapping{
		GuildID:        guildID,
		ChatChannelID:  channelID,
		RelayChannelID: category.RelayChannelID,
		TimeoutHours:   category.TimeoutHours,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func nullableInt64(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
