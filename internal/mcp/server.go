// ABOUTME: MCP server implementation for the diary
// ABOUTME: Provides tools and resources for AI assistants to query diary entries
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with diary-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	dbPath    string
	loc       *time.Location
}

// NewServer creates a new diary MCP server reading from the database at
// dbPath. Timestamps are rendered in loc.
func NewServer(dbPath string, loc *time.Location) *Server {
	impl := &mcp.Implementation{
		Name:    "diary",
		Version: "0.1.0",
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		dbPath:    dbPath,
		loc:       loc,
	}

	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
