// ABOUTME: Directory importer for diary entry files
// ABOUTME: Walks a docs directory and inserts one entry per file in a single transaction
package importer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/harper/diary/internal/db"
)

// Importer imports a directory of diary entry files. Each file's stem
// encodes its timestamp and its contents become the entry body.
type Importer struct {
	db  *sql.DB
	loc *time.Location
	log *slog.Logger
}

// New creates an Importer writing through database in the given local timezone.
func New(database *sql.DB, loc *time.Location, log *slog.Logger) *Importer {
	return &Importer{db: database, loc: loc, log: log}
}

// Run imports every regular file in dir. The whole run executes inside one
// transaction: on any error nothing is committed. Returns the number of
// entries imported.
func (imp *Importer) Run(ctx context.Context, dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to stat input directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read input directory: %w", err)
	}

	runID := uuid.New().String()
	log := imp.log.With("run_id", runID, "dir", dir)
	log.InfoContext(ctx, "starting import")

	tx, err := imp.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	count := 0
	for _, f := range files {
		// Stat through symlinks so a linked entry file still imports.
		fi, err := os.Stat(filepath.Join(dir, f.Name()))
		if err != nil {
			return 0, fmt.Errorf("failed to stat %s: %w", f.Name(), err)
		}
		if !fi.Mode().IsRegular() {
			continue
		}

		if err := imp.importFile(ctx, tx, dir, f.Name(), log); err != nil {
			return 0, err
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	log.InfoContext(ctx, "import complete", "entries", count)
	return count, nil
}

func (imp *Importer) importFile(ctx context.Context, tx *sql.Tx, dir, name string, log *slog.Logger) error {
	year, month, day, hour, minute, err := ParseStem(Stem(name))
	if err != nil {
		return fmt.Errorf("failed to parse filename %s: %w", name, err)
	}

	timestamp, err := TimestampFor(year, month, day, hour, minute, imp.loc)
	if err != nil {
		return fmt.Errorf("failed to parse filename %s: %w", name, err)
	}

	body, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	date := LocalDate(timestamp, imp.loc)
	if err := db.AddEntry(tx, timestamp, date, string(body)); err != nil {
		return fmt.Errorf("failed to insert entry for %s: %w", name, err)
	}

	log.DebugContext(ctx, "imported entry", "file", name, "timestamp", timestamp, "date", date)
	return nil
}
