package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema lists the DDL for every table. Statements are idempotent so they run
// on every Open. Timestamps are stored as unix milliseconds.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		username      TEXT NOT NULL,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		major         TEXT NOT NULL DEFAULT '',
		year          TEXT NOT NULL DEFAULT '',
		bio           TEXT NOT NULL DEFAULT '',
		location      TEXT NOT NULL DEFAULT '',
		level         INTEGER NOT NULL DEFAULT 1,
		xp            INTEGER NOT NULL DEFAULT 0,
		language      TEXT NOT NULL DEFAULT 'en',
		notify_email         INTEGER NOT NULL DEFAULT 1,
		notify_reminders     INTEGER NOT NULL DEFAULT 1,
		notify_quiz_results  INTEGER NOT NULL DEFAULT 1,
		notify_announcements INTEGER NOT NULL DEFAULT 0,
		created_at    INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id           TEXT PRIMARY KEY,
		sequence     INTEGER NOT NULL UNIQUE,
		kind         TEXT NOT NULL,
		subject_id   TEXT NOT NULL DEFAULT '',
		minutes      INTEGER NOT NULL DEFAULT 0,
		score        INTEGER NOT NULL DEFAULT -1,
		topics       TEXT NOT NULL DEFAULT '[]',
		completed_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS activities_completed_at ON activities (completed_at)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_timestamp ON llm_request_events (timestamp)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
