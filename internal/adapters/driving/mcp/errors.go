// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Skimma. It lets AI assistants read office documents in slices through the
// extraction pipeline instead of loading whole files into their context.
package mcp

import "errors"

// ErrMissingReader is returned when the document reader is not provided.
var ErrMissingReader = errors.New("mcp: document reader is required")
