//go:build sqlite_fts5

// ABOUTME: Tests for entry persistence and queries
// ABOUTME: Validates dual-table inserts, recency ordering, year grouping, and FTS search
package db

import (
	"database/sql"
	"testing"
	"time"
)

func addTestEntry(t *testing.T, database *sql.DB, timestamp int64, date, body string) {
	t.Helper()
	tx, err := database.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := AddEntry(tx, timestamp, date, body); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
}

func TestAddEntry(t *testing.T) {
	database := openMigrated(t)

	addTestEntry(t, database, 1675468740, "2023-02-03", "an afternoon on the mountain")

	var timestamp int64
	var date, body string
	err := database.QueryRow("SELECT timestamp, date, body FROM entries").
		Scan(&timestamp, &date, &body)
	if err != nil {
		t.Fatalf("failed to query entries: %v", err)
	}
	if timestamp != 1675468740 || date != "2023-02-03" || body != "an afternoon on the mountain" {
		t.Errorf("got (%d, %s, %q)", timestamp, date, body)
	}

	var textBody string
	if err := database.QueryRow("SELECT body FROM entrytext").Scan(&textBody); err != nil {
		t.Fatalf("failed to query entrytext: %v", err)
	}
	if textBody != body {
		t.Errorf("entrytext body %q does not match entries body %q", textBody, body)
	}
}

func TestAddEntryRollback(t *testing.T) {
	database := openMigrated(t)

	tx, err := database.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := AddEntry(tx, 1675468740, "2023-02-03", "never committed"); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	var n int
	if err := database.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	if n != 0 {
		t.Errorf("got %d rows after rollback, want 0", n)
	}
}

func TestRecentEntries(t *testing.T) {
	database := openMigrated(t)

	base := int64(1672560300)
	for i := 0; i < 5; i++ {
		addTestEntry(t, database, base+int64(i)*86400, "2023-01-01", "entry")
	}

	entries, err := RecentEntries(database, 3)
	if err != nil {
		t.Fatalf("RecentEntries failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Most recent first
	if entries[0].Timestamp != base+4*86400 {
		t.Errorf("got first timestamp %d, want %d", entries[0].Timestamp, base+4*86400)
	}
	if entries[1].Timestamp >= entries[0].Timestamp {
		t.Error("entries not in descending timestamp order")
	}
}

func TestGetEntry(t *testing.T) {
	database := openMigrated(t)
	addTestEntry(t, database, 1675468740, "2023-02-03", "findable")

	t.Run("fetches by rowid", func(t *testing.T) {
		entry, err := GetEntry(database, 1)
		if err != nil {
			t.Fatalf("GetEntry failed: %v", err)
		}
		if entry.ID != 1 || entry.Body != "findable" {
			t.Errorf("got %+v", entry)
		}
	})

	t.Run("errors on unknown rowid", func(t *testing.T) {
		if _, err := GetEntry(database, 999); err == nil {
			t.Error("expected error for missing entry")
		}
	})
}

func TestYearCounts(t *testing.T) {
	database := openMigrated(t)

	addTestEntry(t, database, 1575158340, "2019-11-30", "old")
	addTestEntry(t, database, 1672560300, "2023-01-01", "new year")
	addTestEntry(t, database, 1675468740, "2023-02-03", "february")

	counts, err := YearCounts(database)
	if err != nil {
		t.Fatalf("YearCounts failed: %v", err)
	}

	if len(counts) != 2 {
		t.Fatalf("got %d years, want 2", len(counts))
	}
	if counts[0].Year != 2023 || counts[0].Count != 2 {
		t.Errorf("got %+v, want {2023 2}", counts[0])
	}
	if counts[1].Year != 2019 || counts[1].Count != 1 {
		t.Errorf("got %+v, want {2019 1}", counts[1])
	}
}

func TestEntriesForYear(t *testing.T) {
	database := openMigrated(t)

	addTestEntry(t, database, 1675468740, "2023-02-03", "in range")
	addTestEntry(t, database, 1672560300, "2023-01-01", "also in range")
	addTestEntry(t, database, 1575158340, "2019-11-30", "out of range")

	entries, err := EntriesForYear(database, 2023)
	if err != nil {
		t.Fatalf("EntriesForYear failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Oldest first within the year
	if entries[0].Date != "2023-01-01" || entries[1].Date != "2023-02-03" {
		t.Errorf("got dates %s, %s", entries[0].Date, entries[1].Date)
	}
}

func TestSearchEntries(t *testing.T) {
	database := openMigrated(t)

	addTestEntry(t, database, 1672560300, "2023-01-01", "fireworks over the harbour at midnight")
	addTestEntry(t, database, 1675468740, "2023-02-03", "powder snow on the north ridge")
	addTestEntry(t, database, 1677974340, "2023-03-04", "more snow, heavier this time")

	t.Run("matches body text", func(t *testing.T) {
		results, err := SearchEntries(database, SearchParams{Text: "snow"})
		if err != nil {
			t.Fatalf("SearchEntries failed: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		// Most recent first
		if results[0].Date != "2023-03-04" {
			t.Errorf("got first date %s, want 2023-03-04", results[0].Date)
		}
		if results[0].ID != 3 {
			t.Errorf("got rowid %d, want 3", results[0].ID)
		}
	})

	t.Run("honors the limit", func(t *testing.T) {
		results, err := SearchEntries(database, SearchParams{Text: "snow", Limit: 1})
		if err != nil {
			t.Fatalf("SearchEntries failed: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("got %d results, want 1", len(results))
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		since := time.Unix(1677000000, 0)
		results, err := SearchEntries(database, SearchParams{Text: "snow", Since: &since})
		if err != nil {
			t.Fatalf("SearchEntries failed: %v", err)
		}
		if len(results) != 1 || results[0].Date != "2023-03-04" {
			t.Errorf("got %+v, want only the March entry", results)
		}

		until := time.Unix(1676000000, 0)
		results, err = SearchEntries(database, SearchParams{Text: "snow", Until: &until})
		if err != nil {
			t.Fatalf("SearchEntries failed: %v", err)
		}
		if len(results) != 1 || results[0].Date != "2023-02-03" {
			t.Errorf("got %+v, want only the February entry", results)
		}
	})

	t.Run("returns no results for an unmatched term", func(t *testing.T) {
		results, err := SearchEntries(database, SearchParams{Text: "submarine"})
		if err != nil {
			t.Fatalf("SearchEntries failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("got %d results, want 0", len(results))
		}
	})
}
