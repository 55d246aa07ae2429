package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		verification_date DATETIME,
		roadmap_progress INTEGER NOT NULL DEFAULT 0,
		roadmap_level TEXT NOT NULL DEFAULT 'Beginner',
		institution TEXT,
		position TEXT,
		field TEXT,
		blog_enabled BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createVerificationRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_requests (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		user_email TEXT NOT NULL,
		date_submitted DATETIME NOT NULL,
		research_field TEXT NOT NULL,
		institution TEXT NOT NULL,
		position TEXT NOT NULL,
		publications_count INTEGER NOT NULL DEFAULT 0,
		motivation TEXT NOT NULL,
		publication_links TEXT NOT NULL DEFAULT '[]',
		status TEXT NOT NULL DEFAULT 'pending',
		roadmap_completed BOOLEAN NOT NULL DEFAULT 0,
		reviewed_by TEXT,
		review_date DATETIME,
		review_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createFileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE files (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT UNIQUE NOT NULL,
		original_name TEXT NOT NULL,
		path TEXT NOT NULL,
		url TEXT NOT NULL,
		category TEXT NOT NULL,
		mime_type TEXT,
		size INTEGER NOT NULL DEFAULT 0,
		title TEXT,
		description TEXT,
		tags TEXT NOT NULL DEFAULT '[]',
		views INTEGER NOT NULL DEFAULT 0,
		downloads INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createContributionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contributions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		category TEXT NOT NULL,
		file_id TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createBlogPostTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE blog_posts (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		author TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		excerpt TEXT,
		image TEXT,
		tags TEXT NOT NULL DEFAULT '[]',
		likes INTEGER NOT NULL DEFAULT 0,
		comments INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
