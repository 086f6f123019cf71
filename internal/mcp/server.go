// Package mcp implements the Model Context Protocol server, exposing
// Markdown restructuring operations to LLMs. This lets AI assistants
// canonicalize documents, inspect their structure, and export notebooks
// through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ConnorGray/Markdown/internal/config"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}
	h := &handlers{cfg: cfg}

	s := server.NewMCPServer(
		"mdast",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("mdast MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the loaded
// configuration.
type handlers struct {
	cfg *config.Config
}

// registerTools exposes mdast operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("mdast_canonicalize",
			mcp.WithDescription("Reformat Markdown into canonical form: '*' bullets, loose lists, two-space hard breaks, normalized tables. Idempotent."),
			mcp.WithString("markdown", mcp.Required(), mcp.Description("Markdown source to canonicalize")),
			mcp.WithString("list_marker", mcp.Description("Bullet for unordered lists: '*', '-' or '+' (default from config)")),
		),
		h.canonicalize,
	)

	s.AddTool(
		mcp.NewTool("mdast_outline",
			mcp.WithDescription("Return the heading outline of a Markdown document as JSON"),
			mcp.WithString("markdown", mcp.Required(), mcp.Description("Markdown source to outline")),
		),
		h.outline,
	)

	s.AddTool(
		mcp.NewTool("mdast_export",
			mcp.WithDescription("Convert Markdown to a Jupyter notebook file. Fenced code blocks with an info string become code cells."),
			mcp.WithString("markdown", mcp.Required(), mcp.Description("Markdown source to convert")),
			mcp.WithString("dest", mcp.Required(), mcp.Description("Output .ipynb path")),
			mcp.WithBoolean("force", mcp.Description("Overwrite an existing file")),
		),
		h.export,
	)
}
