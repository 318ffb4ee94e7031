package store

import (
	"database/sql"
	"fmt"
)

// schema is applied on every open; statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		secret_hash TEXT NOT NULL,
		assessment  TEXT,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	// Single-row table: slot is always 1, so there is at most one
	// active session per database.
	`CREATE TABLE IF NOT EXISTS active_session (
		slot       INTEGER PRIMARY KEY CHECK (slot = 1),
		account_id TEXT NOT NULL REFERENCES accounts(id),
		snapshot   TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
