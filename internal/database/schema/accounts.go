// Package schema owns table creation. Schema evolution is forward-only:
// bumping Version points the store at a fresh accounts_v<N> table and the
// previous one becomes inert. Creation is idempotent, so repeated process
// starts are safe.
package schema

import (
	"context"
	"fmt"

	"skill-bridge/internal/database"
)

// Version tags the accounts table name. Bump it instead of migrating.
const Version = 3

func AccountsTable() string {
	return fmt.Sprintf("accounts_v%d", Version)
}

func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	role TEXT NOT NULL DEFAULT 'student',
	skills TEXT NOT NULL DEFAULT '[]',
	linkedin_profile TEXT,
	github_profile TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, AccountsTable()),
		`CREATE TABLE IF NOT EXISTS mentors (
	id BIGSERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	expertise TEXT NOT NULL,
	avatar_url TEXT NOT NULL DEFAULT ''
)`,
		`CREATE TABLE IF NOT EXISTS job_listings (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '',
	UNIQUE (title, company)
)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
