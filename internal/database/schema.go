package database

import (
	"database/sql"
	"fmt"
)

// CreateTables creates all required tables and indexes.
func CreateTables(db *sql.DB) error {
	if err := createUsersTable(db); err != nil {
		return err
	}
	return createQuotesTable(db)
}

func createUsersTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}
	return nil
}

func createQuotesTable(db *sql.DB) error {
	// owner_id NULL marks a public quote. Users are never deleted by this
	// service, so no cascade behavior is defined beyond the default.
	query := `
	CREATE TABLE IF NOT EXISTS quotes (
		id SERIAL PRIMARY KEY,
		text VARCHAR(1000) NOT NULL,
		author VARCHAR(100) NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}',
		owner_id INTEGER REFERENCES users(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("creating quotes table: %w", err)
	}
	return ensureQuotesSchema(db)
}

func ensureQuotesSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS quotes_owner_idx ON quotes(owner_id)`); err != nil {
		return fmt.Errorf("ensuring quotes owner index: %w", err)
	}

	// Partial index backing the seeder's insert-if-absent check.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS quotes_public_text_idx ON quotes(text) WHERE owner_id IS NULL`); err != nil {
		return fmt.Errorf("ensuring quotes public text index: %w", err)
	}

	return nil
}
