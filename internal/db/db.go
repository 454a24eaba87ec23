// ABOUTME: Database connection setup. Requires build tag: sqlite_fts5
// ABOUTME: Opens SQLite with the pragmas the diary tools expect
package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the diary database at the given path. The schema is owned by
// the migrations (see Migrate); Open never creates tables.
func Open(dbPath string) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = database.Close()
		return nil, err
	}

	// Set performance pragmas
	if _, err := database.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = database.Close()
		return nil, err
	}
	if _, err := database.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		_ = database.Close()
		return nil, err
	}

	return database, nil
}
