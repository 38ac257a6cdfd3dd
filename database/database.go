package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
)

// InitDB initializes the database connection. It takes the database path as input.
func InitDB(dbPath string) (*sql.DB, error) {
	// Ensure the directory for the database file exists.
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open the SQLite database. It will be created if it doesn't exist.
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Ping the database to verify the connection.
	if err = db.Ping(); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Println("Successfully connected to the database at", dbPath)
	return db, nil
}

// createTables creates all tables and indexes if they don't exist.
func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS guild_fyi_config (
            guild_id TEXT PRIMARY KEY,
            fyi_emoji TEXT NOT NULL,
            timezone TEXT NOT NULL,
            enhanced INTEGER NOT NULL DEFAULT 0,
            rsvp_emoji TEXT NOT NULL DEFAULT '',
            cancelled_emoji TEXT NOT NULL DEFAULT '',
            relay_to_chat INTEGER NOT NULL DEFAULT 0
        );`,
		`CREATE TABLE IF NOT EXISTS channel_mappings (
            guild_id TEXT NOT NULL,
            chat_channel_id TEXT NOT NULL,
            relay_channel_id TEXT NOT NULL,
            timeout_hours INTEGER,
            PRIMARY KEY (guild_id, chat_channel_id)
        );`,
		`CREATE TABLE IF NOT EXISTS category_mappings (
            guild_id TEXT NOT NULL,
            category_id TEXT NOT NULL,
            relay_channel_id TEXT NOT NULL,
            timeout_hours INTEGER,
            PRIMARY KEY (guild_id, category_id)
        );`,
		`CREATE TABLE IF NOT EXISTS fyis (
            guild_id TEXT NOT NULL,
            chat_channel_id TEXT NOT NULL,
            command_message_id TEXT NOT NULL,
            creator_id TEXT NOT NULL,
            created_at INTEGER NOT NULL,
            expiry INTEGER,
            relay_channel_id TEXT NOT NULL,
            relay_message_id TEXT NOT NULL,
            chat_relay_message_id TEXT NOT NULL DEFAULT '',
            edit_history TEXT NOT NULL,
            interested TEXT NOT NULL,
            active INTEGER NOT NULL DEFAULT 1,
            PRIMARY KEY (guild_id, chat_channel_id, command_message_id)
        );`,
		`CREATE INDEX IF NOT EXISTS idx_fyis_expiry ON fyis(guild_id, expiry);`,
		`CREATE INDEX IF NOT EXISTS idx_fyis_active ON fyis(guild_id, active);`,
		`CREATE TABLE IF NOT EXISTS fyi_mirrors (
            guild_id TEXT NOT NULL,
            channel_id TEXT NOT NULL,
            message_id TEXT NOT NULL,
            chat_channel_id TEXT NOT NULL,
            command_message_id TEXT NOT NULL,
            PRIMARY KEY (guild_id, channel_id, message_id)
        );`,
		`CREATE INDEX IF NOT EXISTS idx_fyi_mirrors_source ON fyi_mirrors(guild_id, chat_channel_id, command_message_id);`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// Store provides access to all persisted FYI state.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store on top of an initialized database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (st *Store) Close() error {
	return st.db.Close()
}
