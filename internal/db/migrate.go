package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS services (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		pricing_type TEXT NOT NULL CHECK (pricing_type IN ('hourly', 'flat')),
		hourly_rate REAL,
		flat_rate REAL,
		estimated_duration_hours REAL NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		service_type TEXT NOT NULL DEFAULT '',
		service_id TEXT,
		description TEXT NOT NULL DEFAULT '',
		scheduled_date TEXT NOT NULL,
		price REAL,
		estimated_cost REAL NOT NULL DEFAULT 0,
		estimated_duration_hours REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL CHECK (status IN ('Scheduled', 'In Progress', 'Completed', 'Paid')),
		completed_at TEXT,
		paid_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_jobs_scheduled_date ON jobs(scheduled_date)`,

	`CREATE TABLE IF NOT EXISTS job_notes (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_job_notes_job ON job_notes(job_id)`,

	`CREATE TABLE IF NOT EXISTS job_photos (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		url TEXT NOT NULL,
		size INTEGER NOT NULL,
		mime_type TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_job_photos_job ON job_photos(job_id)`,

	`CREATE TABLE IF NOT EXISTS job_services (
		job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		service_id TEXT NOT NULL,
		service_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		rate REAL NOT NULL,
		pricing_type TEXT NOT NULL,
		estimated_duration_hours REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (job_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL CHECK (status IN ('Active', 'Inactive', 'Lead')),
		total_jobs INTEGER NOT NULL DEFAULT 0,
		total_spent REAL NOT NULL DEFAULT 0,
		client_since TEXT NOT NULL,
		last_contact TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS communications (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		direction TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_communications_client ON communications(client_id, date)`,
}
