package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate creates every table the store needs. Statements are idempotent and
// run in order on each start.
func Migrate(db *sql.DB, dialect Dialect) error {
	migrations := schema(dialect)
	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration %d: %w", i+1, err)
		}
	}
	return nil
}

// schema renders the shared DDL for a dialect: postgres gets SERIAL keys and
// TIMESTAMPTZ, sqlite gets AUTOINCREMENT keys and TIMESTAMP.
func schema(dialect Dialect) []string {
	pk, ts := "SERIAL PRIMARY KEY", "TIMESTAMP WITH TIME ZONE"
	if dialect == SQLite {
		pk, ts = "INTEGER PRIMARY KEY AUTOINCREMENT", "TIMESTAMP"
	}
	r := strings.NewReplacer("{pk}", pk, "{ts}", ts)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id {pk},
			username VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS approach_items (
			id {pk},
			icon TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			"order" INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id {pk},
			status TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			action_text TEXT NOT NULL,
			action_link TEXT NOT NULL,
			"order" INTEGER NOT NULL,
			image TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS missions (
			id {pk},
			icon TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			"order" INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS activities (
			id {pk},
			image TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			action_text TEXT NOT NULL,
			action_link TEXT NOT NULL,
			"order" INTEGER NOT NULL,
			image_position VARCHAR(10) NOT NULL DEFAULT 'left'
		);`,
		`CREATE TABLE IF NOT EXISTS partners (
			id {pk},
			name TEXT NOT NULL,
			logo TEXT NOT NULL,
			url TEXT NOT NULL,
			"order" INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS areas (
			id {pk},
			name TEXT NOT NULL,
			latitude TEXT NOT NULL,
			longitude TEXT NOT NULL,
			description TEXT,
			"order" INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS contact_info (
			id {pk},
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS about_content (
			id {pk},
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			image TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS contact_submissions (
			id {pk},
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at {ts} NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
			id {pk},
			email VARCHAR(255) UNIQUE NOT NULL,
			created_at {ts} NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_approach_items_order ON approach_items("order", id);`,
		`CREATE INDEX IF NOT EXISTS idx_events_order ON events("order", id);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_order ON missions("order", id);`,
		`CREATE INDEX IF NOT EXISTS idx_activities_order ON activities("order", id);`,
		`CREATE INDEX IF NOT EXISTS idx_partners_order ON partners("order", id);`,
		`CREATE INDEX IF NOT EXISTS idx_areas_order ON areas("order", id);`,
		`CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at ON contact_submissions(created_at);`,
	}

	for i, m := range migrations {
		migrations[i] = r.Replace(m)
	}
	return migrations
}
