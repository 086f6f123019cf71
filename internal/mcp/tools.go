// tools.go implements the MCP tool handlers.
//
// Handler pattern: user-level failures (bad Markdown, missing parameters,
// existing files) are returned as MCP error results rather than Go errors,
// so the LLM receives actionable feedback instead of a protocol failure.

package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ConnorGray/Markdown/internal/log"
	"github.com/ConnorGray/Markdown/internal/notebook"
	"github.com/ConnorGray/Markdown/markdown"
)

// canonicalize handles mdast_canonicalize tool calls.
func (h *handlers) canonicalize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError("markdown is required"), nil //nolint:nilerr
	}

	opts := h.cfg.RenderOptions()
	if marker := getString(req, "list_marker", ""); marker != "" {
		opts.ListMarker = marker[0]
	}

	blocks, err := markdown.Parse(source)

	log.Event("mcp:mdast_canonicalize", "canonicalize").Author("mcp").Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(markdown.RenderWithOptions(blocks, opts) + "\n"), nil
}

// outline handles mdast_outline tool calls.
func (h *handlers) outline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError("markdown is required"), nil //nolint:nilerr
	}

	blocks, err := markdown.Parse(source)

	log.Event("mcp:mdast_outline", "outline").Author("mcp").Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"headings": headings(blocks),
	})
}

// export handles mdast_export tool calls.
func (h *handlers) export(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError("markdown is required"), nil //nolint:nilerr
	}

	dest, err := req.RequireString("dest")
	if err != nil {
		return mcp.NewToolResultError("dest is required"), nil //nolint:nilerr
	}

	opts := notebook.Options{
		Dest:  dest,
		Force: getBool(req, "force", false),
	}

	out, err := notebook.Export(source, dest, opts)

	log.Event("mcp:mdast_export", "export").Author("mcp").Detail("dest", dest).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"path": out,
	})
}

// heading is one entry of a document outline.
type heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// headings collects the document's headings in reading order, including
// those nested inside block quotes and list items.
func headings(blocks []markdown.Block) []heading {
	out := []heading{}
	for _, b := range blocks {
		switch b := b.(type) {
		case markdown.Heading:
			out = append(out, heading{Level: int(b.Level), Text: plainText(b.Inlines)})
		case markdown.BlockQuote:
			out = append(out, headings(b.Blocks)...)
		case markdown.List:
			for _, item := range b.Items {
				out = append(out, headings(item)...)
			}
		}
	}
	return out
}

// plainText flattens inline content to unstyled text.
func plainText(spans markdown.Inlines) string {
	var b strings.Builder
	for _, span := range spans {
		switch span := span.(type) {
		case markdown.Text:
			b.WriteString(string(span))
		case markdown.Code:
			b.WriteString(string(span))
		case markdown.Emphasis:
			b.WriteString(plainText(markdown.Inlines(span)))
		case markdown.Strong:
			b.WriteString(plainText(markdown.Inlines(span)))
		case markdown.Strikethrough:
			b.WriteString(plainText(markdown.Inlines(span)))
		case markdown.Link:
			b.WriteString(plainText(span.Content))
		case markdown.Image:
			b.WriteString(plainText(span.Description))
		case markdown.SoftBreak, markdown.HardBreak:
			b.WriteString(" ")
		}
	}
	return b.String()
}
