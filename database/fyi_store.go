package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fyi-bot/models"
)

// CreateFYI writes the FYI record together with the mirror pointer for each
// bot-authored copy as one transaction.
func (st *Store) CreateFYI(f *models.FYI) error {
	history, err := json.Marshal(f.EditHistory)
	if err != nil {
		return fmt.Errorf("failed to encode edit history: %w", err)
	}
	interested, err := json.Marshal(emptyIfNil(f.Interested))
	if err != nil {
		return fmt.Errorf("failed to encode interested list: %w", err)
	}

	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin FYI create transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO fyis
        (guild_id, chat_channel_id, command_message_id, creator_id, created_at, expiry,
         relay_channel_id, relay_message_id, chat_relay_message_id, edit_history, interested, active)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		f.GuildID, f.ChatChannelID, f.CommandMessageID, f.CreatorID,
		f.CreatedAt.Unix(), nullableTime(f.Expiry),
		f.RelayChannelID, f.RelayMessageID, f.ChatRelayMessageID,
		string(history), string(interested),
	)
	if err != nil {
		return fmt.Errorf("failed to insert FYI %s: %w", f.CommandMessageID, err)
	}

	for _, ref := range f.MirrorRefs() {
		_, err = tx.Exec(`INSERT OR REPLACE INTO fyi_mirrors
            (guild_id, channel_id, message_id, chat_channel_id, command_message_id)
            VALUES (?, ?, ?, ?, ?)`,
			ref.GuildID, ref.ChannelID, ref.MessageID, f.ChatChannelID, f.CommandMessageID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert mirror pointer %s: %w", ref.MessageID, err)
		}
	}
	return tx.Commit()
}

// Resolve looks up the FYI owning the given key. The key may be the source
// message or any mirror; mirror keys are followed through their back
// reference. Returns (nil, nil, nil) when the key belongs to no FYI.
func (st *Store) Resolve(guildID, channelID, messageID string) (*models.FYI, *models.ResolvedKey, error) {
	resolved := models.ResolvedKey{
		Kind:   models.KeySource,
		Source: models.MessageRef{GuildID: guildID, ChannelID: channelID, MessageID: messageID},
	}

	var chatChannelID, commandMessageID string
	err := st.db.QueryRow(`SELECT chat_channel_id, command_message_id FROM fyi_mirrors
        WHERE guild_id = ? AND channel_id = ? AND message_id = ?`,
		guildID, channelID, messageID,
	).Scan(&chatChannelID, &commandMessageID)
	switch {
	case err == sql.ErrNoRows:
		// Not a mirror; treat the key itself as a source key.
	case err != nil:
		return nil, nil, fmt.Errorf("failed to query mirror pointer: %w", err)
	default:
		resolved.Kind = models.KeyMirror
		resolved.Source = models.MessageRef{GuildID: guildID, ChannelID: chatChannelID, MessageID: commandMessageID}
	}

	f, err := st.getFYI(resolved.Source)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, nil
	}
	return f, &resolved, nil
}

// getFYI loads one FYI record by its source key, or nil when absent.
func (st *Store) getFYI(ref models.MessageRef) (*models.FYI, error) {
	row := st.db.QueryRow(`SELECT guild_id, chat_channel_id, command_message_id, creator_id,
        created_at, expiry, relay_channel_id, relay_message_id, chat_relay_message_id,
        edit_history, interested, active
        FROM fyis WHERE guild_id = ? AND chat_channel_id = ? AND command_message_id = ?`,
		ref.GuildID, ref.ChannelID, ref.MessageID,
	)
	f, err := scanFYI(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return f, err
}

// UpdateContent appends the newly rendered text to the edit history unless it
// equals the current last entry, and replaces the cached interested set
// wholesale. Last write wins.
func (st *Store) UpdateContent(ref models.MessageRef, newText string, interested []string) error {
	f, err := st.getFYI(ref)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("no FYI record for message %s", ref.MessageID)
	}

	history := f.EditHistory
	if len(history) == 0 || history[len(history)-1] != newText {
		history = append(history, newText)
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode edit history: %w", err)
	}
	interestedJSON, err := json.Marshal(emptyIfNil(interested))
	if err != nil {
		return fmt.Errorf("failed to encode interested list: %w", err)
	}

	_, err = st.db.Exec(`UPDATE fyis SET edit_history = ?, interested = ?
        WHERE guild_id = ? AND chat_channel_id = ? AND command_message_id = ?`,
		string(historyJSON), string(interestedJSON), ref.GuildID, ref.ChannelID, ref.MessageID,
	)
	if err != nil {
		return fmt.Errorf("failed to update FYI content for message %s: %w", ref.MessageID, err)
	}
	return nil
}

// Deactivate flips the record inactive. It reports whether this call
// performed the transition; a record that is already inactive (or absent) is
// left untouched and reported false, making the operation idempotent.
func (st *Store) Deactivate(ref models.MessageRef) (bool, error) {
	res, err := st.db.Exec(`UPDATE fyis SET active = 0
        WHERE guild_id = ? AND chat_channel_id = ? AND command_message_id = ? AND active = 1`,
		ref.GuildID, ref.ChannelID, ref.MessageID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate FYI %s: %w", ref.MessageID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to deactivate FYI %s: %w", ref.MessageID, err)
	}
	return affected > 0, nil
}

// DeleteFYI removes the record and all its mirror pointers in one
// transaction. Deleting an unknown key is a no-op.
func (st *Store) DeleteFYI(ref models.MessageRef) error {
	tx, err := st.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin FYI delete transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM fyis
        WHERE guild_id = ? AND chat_channel_id = ? AND command_message_id = ?`,
		ref.GuildID, ref.ChannelID, ref.MessageID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete FYI %s: %w", ref.MessageID, err)
	}
	_, err = tx.Exec(`DELETE FROM fyi_mirrors
        WHERE guild_id = ? AND chat_channel_id = ? AND command_message_id = ?`,
		ref.GuildID, ref.ChannelID, ref.MessageID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete mirror pointers for FYI %s: %w", ref.MessageID, err)
	}
	return tx.Commit()
}

// QueryExpired returns the guild's FYIs whose expiry is set and strictly
// before asOf, in ascending expiry order. Served by the (guild_id, expiry)
// index.
func (st *Store) QueryExpired(guildID string, asOf time.Time) ([]models.FYI, error) {
	rows, err := st.db.Query(`SELECT guild_id, chat_channel_id, command_message_id, creator_id,
        created_at, expiry, relay_channel_id, relay_message_id, chat_relay_message_id,
        edit_history, interested, active
        FROM fyis WHERE guild_id = ? AND expiry IS NOT NULL AND expiry < ?
        ORDER BY expiry ASC`,
		guildID, asOf.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired FYIs for guild %s: %w", guildID, err)
	}
	defer rows.Close()
	return collectFYIs(rows)
}

// QueryInactive returns the guild's cancelled and deactivated FYIs.
func (st *Store) QueryInactive(guildID string) ([]models.FYI, error) {
	rows, err := st.db.Query(`SELECT guild_id, chat_channel_id, command_message_id, creator_id,
        created_at, expiry, relay_channel_id, relay_message_id, chat_relay_message_id,
        edit_history, interested, active
        FROM fyis WHERE guild_id = ? AND active = 0
        ORDER BY created_at ASC`,
		guildID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query inactive FYIs for guild %s: %w", guildID, err)
	}
	defer rows.Close()
	return collectFYIs(rows)
}

// QueryByKeys returns the FYIs sourced in the given channel whose command
// message is among messageIDs. The query is scoped to the channel's key range
// first; there is no arbitrary multi-key lookup across channels.
func (st *Store) QueryByKeys(guildID, channelID string, messageIDs []string) ([]models.FYI, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(messageIDs)), ",")
	args := []interface{}{guildID, channelID}
	for _, id := range messageIDs {
		args = append(args, id)
	}

	rows, err := st.db.Query(`SELECT guild_id, chat_channel_id, command_message_id, creator_id,
        created_at, expiry, relay_channel_id, relay_message_id, chat_relay_message_id,
        edit_history, interested, active
        FROM fyis WHERE guild_id = ? AND chat_channel_id = ?
        AND command_message_id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query FYIs by keys in channel %s: %w", channelID, err)
	}
	defer rows.Close()
	return collectFYIs(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFYI(row rowScanner) (*models.FYI, error) {
	var f models.FYI
	var createdAt int64
	var expiry sql.NullInt64
	var history, interested string

	err := row.Scan(
		&f.GuildID, &f.ChatChannelID, &f.CommandMessageID, &f.CreatorID,
		&createdAt, &expiry, &f.RelayChannelID, &f.RelayMessageID, &f.ChatRelayMessageID,
		&history, &interested, &f.Active,
	)
	if err != nil {
		return nil, err
	}

	f.CreatedAt = time.Unix(createdAt, 0).UTC()
	if expiry.Valid {
		t := time.Unix(expiry.Int64, 0).UTC()
		f.Expiry = &t
	}
	if err := json.Unmarshal([]byte(history), &f.EditHistory); err != nil {
		return nil, fmt.Errorf("corrupt edit history for FYI %s: %w", f.CommandMessageID, err)
	}
	if err := json.Unmarshal([]byte(interested), &f.Interested); err != nil {
		return nil, fmt.Errorf("corrupt interested list for FYI %s: %w", f.CommandMessageID, err)
	}
	return &f, nil
}

func collectFYIs(rows *sql.Rows) ([]models.FYI, error) {
	var fyis []models.FYI
	for rows.Next() {
		f, err := scanFYI(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan FYI row: %w", err)
		}
		fyis = append(fyis, *f)
	}
	return fyis, rows.Err()
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Unix()
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
