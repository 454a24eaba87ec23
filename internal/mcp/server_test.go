//go:build sqlite_fts5

// ABOUTME: Tests for the diary MCP server
// ABOUTME: Validates server construction and tool handlers against a real database
package mcp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/harper/diary/internal/db"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	loc, err := time.LoadLocation("America/Vancouver")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	dbPath := filepath.Join(t.TempDir(), "diary.sqlite3")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(context.Background(), database); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	tx, err := database.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := db.AddEntry(tx, 1675468740, "2023-02-03", "fresh snow on the ridge"); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := db.AddEntry(tx, 1672560300, "2023-01-01", "quiet morning by the water"); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	return NewServer(dbPath, loc)
}

func TestNewServer(t *testing.T) {
	server := testServer(t)
	if server.mcpServer == nil {
		t.Error("expected underlying MCP server to be initialized")
	}
}

func TestHandleSearchEntries(t *testing.T) {
	server := testServer(t)

	result, output, err := server.handleSearchEntries(context.Background(), nil, SearchEntriesInput{Text: "snow"})
	if err != nil {
		t.Fatalf("handleSearchEntries failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected a tool result")
	}
	if output.Count != 1 {
		t.Fatalf("got %d matches, want 1", output.Count)
	}
	if output.Results[0].Date != "2023-02-03" {
		t.Errorf("got date %s, want 2023-02-03", output.Results[0].Date)
	}
}

func TestHandleRecentEntries(t *testing.T) {
	server := testServer(t)

	t.Run("returns newest first", func(t *testing.T) {
		_, output, err := server.handleRecentEntries(context.Background(), nil, RecentEntriesInput{})
		if err != nil {
			t.Fatalf("handleRecentEntries failed: %v", err)
		}
		if output.Count != 2 {
			t.Fatalf("got %d entries, want 2", output.Count)
		}
		if output.Entries[0].Date != "2023-02-03" {
			t.Errorf("got first date %s, want 2023-02-03", output.Entries[0].Date)
		}
	})

	t.Run("honors the limit", func(t *testing.T) {
		_, output, err := server.handleRecentEntries(context.Background(), nil, RecentEntriesInput{Limit: 1})
		if err != nil {
			t.Fatalf("handleRecentEntries failed: %v", err)
		}
		if output.Count != 1 {
			t.Errorf("got %d entries, want 1", output.Count)
		}
	})
}

func TestResourceHandlers(t *testing.T) {
	server := testServer(t)

	result, err := server.handleRecentResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("handleRecentResource failed: %v", err)
	}
	if len(result.Contents) != 1 || result.Contents[0].MIMEType != "application/json" {
		t.Errorf("got %+v", result.Contents)
	}

	result, err = server.handleYearCounts(context.Background(), nil)
	if err != nil {
		t.Fatalf("handleYearCounts failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Errorf("got %d contents, want 1", len(result.Contents))
	}
}
