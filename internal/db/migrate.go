// ABOUTME: Schema migrations via goose
// ABOUTME: Applies the embedded SQL that creates the entries and entrytext tables
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harper/diary/internal/db/migrations"
	"github.com/pressly/goose/v3"
)

// Migrate brings the database schema up to date using the embedded
// migrations. Importing and querying assume this has been run.
func Migrate(ctx context.Context, database *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, database, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
