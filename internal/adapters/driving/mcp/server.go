package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// Version is reported to MCP clients during initialisation.
const Version = "0.1.0"

// serverInstructions is surfaced to the connected assistant so it picks the
// right tool for the document size at hand.
const serverInstructions = "Skimma extracts text from office documents " +
	"(.pdf, .xlsx, .docx, .pptx and their legacy variants). Call " +
	"document_info first to learn a document's size, then read_document for " +
	"whole or page-selected reads, read_document_range for a window at a " +
	"character offset, or stream_document to walk a large document chunk by " +
	"chunk. Extraction runs once per file; repeat calls are served from the " +
	"cache."

// Server exposes the document reader over the Model Context Protocol.
// A single instance serves one transport, stdio or HTTP.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer wires the tool and resource handlers onto a fresh MCP server.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "skimma",
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: serverInstructions,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves MCP over stdio until the context is cancelled. Stdio is the
// transport MCP hosts spawn by default.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp: serving over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr until the context is
// cancelled, then shuts the listener down.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("mcp: listening on %s", addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
