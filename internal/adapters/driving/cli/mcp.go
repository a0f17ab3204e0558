package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skimma-cli/internal/adapters/driving/mcp"
)

var mcpServeHTTP string

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

Use --http to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  skimma mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  skimma mcp serve --http 127.0.0.1:8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "skimma": {
        "command": "/path/to/skimma",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpServeHTTP, "http", "", "HTTP listen address (empty = stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ports := &mcp.Ports{
		Reader:   readerService,
		Backends: backendService,
		Cache:    cacheService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if mcpServeHTTP != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", mcpServeHTTP)
		return server.RunHTTP(cmd.Context(), mcpServeHTTP)
	}

	return server.Run(cmd.Context())
}
