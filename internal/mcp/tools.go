// ABOUTME: MCP tool implementations for the diary
// ABOUTME: Provides full-text search and recent-entry tools
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harper/diary/internal/db"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchEntriesInput defines the input for the search_entries tool.
type SearchEntriesInput struct {
	Text  string `json:"text" jsonschema:"Full-text query matched against entry bodies" jsonschema_extras:"required=true"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 20)"`
}

// SearchEntriesOutput defines the output for the search_entries tool.
type SearchEntriesOutput struct {
	Results []MatchData `json:"results" jsonschema:"Matching entries with snippets"`
	Count   int         `json:"count" jsonschema:"Number of matches returned"`
}

// MatchData is one search hit.
type MatchData struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Snippet string `json:"snippet"`
}

// RecentEntriesInput defines the input for the recent_entries tool.
type RecentEntriesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of entries to return (default 8)"`
}

// RecentEntriesOutput defines the output for the recent_entries tool.
type RecentEntriesOutput struct {
	Entries []db.Entry `json:"entries" jsonschema:"Most recent diary entries"`
	Count   int        `json:"count" jsonschema:"Number of entries returned"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	searchTool := &mcp.Tool{
		Name:        "search_entries",
		Description: "Full-text search over diary entry bodies. Returns matching entries with dates and snippets.",
	}
	mcp.AddTool(s.mcpServer, searchTool, s.handleSearchEntries)

	recentTool := &mcp.Tool{
		Name:        "recent_entries",
		Description: "Fetch the most recent diary entries with their full bodies.",
	}
	mcp.AddTool(s.mcpServer, recentTool, s.handleRecentEntries)
}

// handleSearchEntries implements the search_entries tool.
func (s *Server) handleSearchEntries(ctx context.Context, req *mcp.CallToolRequest, input SearchEntriesInput) (*mcp.CallToolResult, SearchEntriesOutput, error) {
	database, err := db.Open(s.dbPath)
	if err != nil {
		return nil, SearchEntriesOutput{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = database.Close() }()

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	results, err := db.SearchEntries(database, db.SearchParams{Text: input.Text, Limit: limit})
	if err != nil {
		return nil, SearchEntriesOutput{}, fmt.Errorf("failed to search entries: %w", err)
	}

	output := SearchEntriesOutput{Count: len(results)}
	for _, r := range results {
		output.Results = append(output.Results, MatchData{
			ID:      r.ID,
			Date:    r.Date,
			Time:    time.Unix(r.Timestamp, 0).In(s.loc).Format("15:04"),
			Snippet: r.Snippet,
		})
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Found %d entries matching %q", len(results), input.Text),
			},
		},
	}

	return result, output, nil
}

// handleRecentEntries implements the recent_entries tool.
func (s *Server) handleRecentEntries(ctx context.Context, req *mcp.CallToolRequest, input RecentEntriesInput) (*mcp.CallToolResult, RecentEntriesOutput, error) {
	database, err := db.Open(s.dbPath)
	if err != nil {
		return nil, RecentEntriesOutput{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = database.Close() }()

	limit := input.Limit
	if limit <= 0 {
		limit = 8
	}

	entries, err := db.RecentEntries(database, limit)
	if err != nil {
		return nil, RecentEntriesOutput{}, fmt.Errorf("failed to list entries: %w", err)
	}

	output := RecentEntriesOutput{Entries: entries, Count: len(entries)}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Returning %d most recent entries", len(entries)),
			},
		},
	}

	return result, output, nil
}
