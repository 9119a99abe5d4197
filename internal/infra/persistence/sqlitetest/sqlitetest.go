// Package sqlitetest opens an in-memory SQLite database carrying the staffing
// schema, for repository and use case tests that need real SQL.
package sqlitetest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The models default their IDs with uuid_generate_v7(), which SQLite lacks,
// so the schema is spelled out here. Column defaults match the zero values
// because GORM omits zero-valued fields that carry a default tag.
var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE admin_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		full_name TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE worker_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		first_name TEXT,
		last_name TEXT,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		late_cancellation_count INTEGER NOT NULL DEFAULT 0,
		total_hours_worked REAL NOT NULL DEFAULT 0,
		tier TEXT NOT NULL DEFAULT 'SILVER',
		average_rating REAL,
		review_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE hotel_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		business_name TEXT NOT NULL,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		is_banned BOOLEAN NOT NULL DEFAULT 0,
		ban_reason TEXT,
		total_hours_hired REAL NOT NULL DEFAULT 0,
		tier TEXT NOT NULL DEFAULT 'SILVER',
		average_rating REAL,
		review_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE job_postings (
		id TEXT PRIMARY KEY,
		hotel_id TEXT NOT NULL,
		title TEXT NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		hourly_rate REAL NOT NULL,
		slots_open INTEGER NOT NULL DEFAULT 0,
		is_filled BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE shifts (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		hotel_id TEXT NOT NULL,
		job_posting_id TEXT NOT NULL,
		start_time DATETIME NOT NULL,
		is_completed BOOLEAN NOT NULL DEFAULT 0,
		total_hours REAL NOT NULL DEFAULT 0,
		worker_rating INTEGER,
		hotel_rating INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		job_posting_id TEXT NOT NULL,
		worker_id TEXT NOT NULL,
		status TEXT NOT NULL,
		cancellation_reason TEXT,
		cancelled_at DATETIME,
		is_late_cancellation BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`,
}

// Open returns a fresh in-memory database with the schema applied.
// The pool is pinned to one connection: every connection to ":memory:" is a separate database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error, "create schema")
	}

	return db
}
