// ABOUTME: MCP resource implementations for the diary
// ABOUTME: Provides queryable context about recent entries and yearly volume
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/diary/internal/db"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	recentResource := &mcp.Resource{
		URI:         "diary://recent-entries",
		Name:        "Recent Entries",
		Description: "Last 8 diary entries with full bodies",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(recentResource, s.handleRecentResource)

	yearsResource := &mcp.Resource{
		URI:         "diary://year-counts",
		Name:        "Year Counts",
		Description: "Number of diary entries per calendar year",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(yearsResource, s.handleYearCounts)
}

// handleRecentResource implements the recent-entries resource.
func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	database, err := db.Open(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = database.Close() }()

	entries, err := db.RecentEntries(database, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "diary://recent-entries",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}

	return result, nil
}

// handleYearCounts implements the year-counts resource.
func (s *Server) handleYearCounts(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	database, err := db.Open(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = database.Close() }()

	counts, err := db.YearCounts(database)
	if err != nil {
		return nil, fmt.Errorf("failed to count years: %w", err)
	}

	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return nil, err
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "diary://year-counts",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}

	return result, nil
}
