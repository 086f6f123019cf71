// serve.go implements "mdast serve": the MCP stdio server.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ConnorGray/Markdown/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout, exposing
mdast_canonicalize, mdast_outline, and mdast_export tools to MCP clients
such as Claude Desktop.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
