package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/mcp"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default, for Claude Desktop)
  inkwell mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  inkwell mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "inkwell": {
        "command": "/path/to/inkwell",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	sync, err := ensureSyncService(ctx)
	if err != nil {
		return err
	}
	search, err := ensureSearchService(ctx)
	if err != nil {
		return err
	}
	style, err := ensureStyleService(ctx)
	if err != nil {
		return err
	}

	// Missing style guide is fine; the tool reports it as absent.
	guide, err := ensureStyleGuide()
	if err != nil {
		logger.Warn("Style guide unavailable: %v", err)
	}

	ports := &mcp.Ports{
		Sync:       sync,
		Search:     search,
		Style:      style,
		StyleGuide: guide,
		History:    ensureHistory(),
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
