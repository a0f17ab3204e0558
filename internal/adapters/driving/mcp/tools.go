package mcp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// Tool defaults. A caller that omits sizes gets the same windows the CLI
// uses, small enough to keep any single response bounded.
const (
	defaultRangeLength = 10000
	defaultChunkSize   = 10000
)

// DocumentInfoInput is the input schema for the document_info tool.
type DocumentInfoInput struct {
	FilePath string `json:"file_path" jsonschema:"path to the document (.pdf, .xlsx, .docx, .pptx and legacy variants)"`
}

// DocumentInfoOutput is the output schema for the document_info tool.
type DocumentInfoOutput struct {
	FilePath    string `json:"file_path"`
	Kind        string `json:"kind,omitempty"`
	FileExists  bool   `json:"file_exists"`
	TotalLength int    `json:"total_length"`
	TotalPages  int    `json:"total_pages"`
	PageInfo    string `json:"page_info,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ReadDocumentInput is the input schema for the read_document tool.
type ReadDocumentInput struct {
	FilePath string `json:"file_path" jsonschema:"path to the document"`
	Pages    string `json:"pages,omitempty" jsonschema:"page selection like '2' or '1,3,5-7' (default all pages)"`
}

// ReadDocumentOutput is the output schema for the read_document tool.
type ReadDocumentOutput struct {
	FilePath       string `json:"file_path"`
	Content        string `json:"content"`
	TotalLength    int    `json:"total_length"`
	TotalPages     int    `json:"total_pages"`
	RequestedPages []int  `json:"requested_pages,omitempty"`
	ReturnedPages  int    `json:"returned_pages"`
	Error          string `json:"error,omitempty"`
}

// ReadDocumentRangeInput is the input schema for the read_document_range tool.
type ReadDocumentRangeInput struct {
	FilePath  string `json:"file_path" jsonschema:"path to the document"`
	Offset    int    `json:"offset,omitempty" jsonschema:"character offset to start from (default 0)"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"maximum characters to return (default 10000)"`
}

// ReadDocumentRangeOutput is the output schema for the read_document_range tool.
type ReadDocumentRangeOutput struct {
	Content        string `json:"content"`
	TotalLength    int    `json:"total_length"`
	Offset         int    `json:"offset"`
	ReturnedLength int    `json:"returned_length"`
	HasMore        bool   `json:"has_more"`
	Error          string `json:"error,omitempty"`
}

// StreamDocumentInput is the input schema for the stream_document tool. The
// caller holds the cursor: pass the previous record's current_position to
// advance, omit it to start from the beginning.
type StreamDocumentInput struct {
	FilePath       string `json:"file_path" jsonschema:"path to the document"`
	Cursor         int    `json:"cursor,omitempty" jsonschema:"character position from the previous chunk's current_position (default 0)"`
	ChunkSize      int    `json:"chunk_size,omitempty" jsonschema:"maximum characters per chunk (default 10000)"`
	WordBoundaries *bool  `json:"word_boundaries,omitempty" jsonschema:"prefer cutting chunks at whitespace (default true)"`
}

// StreamDocumentOutput is the output schema for the stream_document tool.
type StreamDocumentOutput struct {
	SessionID       string  `json:"session_id"`
	Chunk           string  `json:"chunk"`
	CurrentPosition int     `json:"current_position"`
	TotalLength     int     `json:"total_length"`
	ProgressPercent float64 `json:"progress_percent"`
	IsComplete      bool    `json:"is_complete"`
	Error           string  `json:"error,omitempty"`
}

// ListBackendsInput is the input schema for the list_backends tool.
type ListBackendsInput struct{}

// BackendOutput is one catalogue entry in the list_backends output.
type BackendOutput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Class       string   `json:"class"`
	Kinds       []string `json:"kinds"`
	Priority    int      `json:"priority"`
	Available   bool     `json:"available"`
	Reason      string   `json:"reason,omitempty"`
	InstallHint string   `json:"install_hint,omitempty"`
}

// ListBackendsOutput is the output schema for the list_backends tool.
type ListBackendsOutput struct {
	Backends []BackendOutput `json:"backends"`
}

// CacheStatsInput is the input schema for the cache_stats tool.
type CacheStatsInput struct{}

// CacheStatsOutput is the output schema for the cache_stats tool.
type CacheStatsOutput struct {
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"total_bytes"`
	Hits       uint64 `json:"hits"`
	Misses     uint64 `json:"misses"`
	Evictions  uint64 `json:"evictions"`
}

// ClearCacheInput is the input schema for the clear_cache tool.
type ClearCacheInput struct{}

// ClearCacheOutput is the output schema for the clear_cache tool.
type ClearCacheOutput struct {
	Cleared int `json:"cleared"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "document_info",
		Description: "Get existence, kind, text length and page information for an office document without reading its content",
	}, s.handleDocumentInfo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_document",
		Description: "Read the text of an office document (.pdf, .xlsx, .docx, .pptx), optionally selecting pages",
	}, s.handleReadDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_document_range",
		Description: "Read a window of a document's text by character offset and length",
	}, s.handleReadDocumentRange)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "stream_document",
		Description: "Read a document in sequential chunks; pass current_position back as cursor to advance",
	}, s.handleStreamDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_backends",
		Description: "List the extraction backends with priority, availability and install instructions",
	}, s.handleListBackends)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cache_stats",
		Description: "Report extraction cache entries, retained bytes and hit/miss counters",
	}, s.handleCacheStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_cache",
		Description: "Drop every cached extraction",
	}, s.handleClearCache)
}

// recordableFailure reports whether err is a document-level failure that
// belongs in the tool record's error field. Everything else fails the RPC:
// an assistant can react to "file not found", but not to a broken transport.
func recordableFailure(err error) bool {
	return errors.Is(err, domain.ErrFileNotFound) ||
		errors.Is(err, domain.ErrUnsupportedKind) ||
		errors.Is(err, domain.ErrAllBackendsFailed) ||
		errors.Is(err, domain.ErrUnsupportedEncoding) ||
		errors.Is(err, domain.ErrInvalidPageRange) ||
		errors.Is(err, domain.ErrInvalidChunkSize) ||
		errors.Is(err, domain.ErrNoProgress)
}

// handleDocumentInfo handles the document_info tool invocation.
func (s *Server) handleDocumentInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInfoInput,
) (*mcp.CallToolResult, DocumentInfoOutput, error) {
	info, err := s.ports.Reader.Probe(ctx, input.FilePath)
	if err != nil {
		if recordableFailure(err) {
			return nil, DocumentInfoOutput{
				FilePath:   input.FilePath,
				FileExists: true,
				Error:      err.Error(),
			}, nil
		}
		return nil, DocumentInfoOutput{}, err
	}

	output := DocumentInfoOutput{
		FilePath:    info.Path,
		Kind:        info.Kind.String(),
		FileExists:  info.FileExists,
		TotalLength: info.TotalLength,
		TotalPages:  info.TotalPages,
		PageInfo:    info.Description,
	}
	if !info.FileExists {
		output.Error = domain.ErrFileNotFound.Error()
	}
	return nil, output, nil
}

// handleReadDocument handles the read_document tool invocation. The content
// is rendered for reading with a "# filename" header; offset-exact access
// goes through read_document_range or stream_document instead.
func (s *Server) handleReadDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadDocumentInput,
) (*mcp.CallToolResult, ReadDocumentOutput, error) {
	var (
		result *domain.ReadResult
		err    error
	)
	if input.Pages != "" {
		result, err = s.ports.Reader.ReadPages(ctx, input.FilePath, input.Pages)
	} else {
		result, err = s.ports.Reader.Read(ctx, input.FilePath)
	}
	if err != nil {
		if recordableFailure(err) {
			return nil, ReadDocumentOutput{FilePath: input.FilePath, Error: err.Error()}, nil
		}
		return nil, ReadDocumentOutput{}, err
	}

	return nil, ReadDocumentOutput{
		FilePath:       result.Path,
		Content:        fmt.Sprintf("# %s\n\n%s", filepath.Base(result.Path), result.Content),
		TotalLength:    result.TotalChars,
		TotalPages:     result.TotalPages,
		RequestedPages: result.RequestedPages,
		ReturnedPages:  result.ReturnedPages,
	}, nil
}

// handleReadDocumentRange handles the read_document_range tool invocation.
func (s *Server) handleReadDocumentRange(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadDocumentRangeInput,
) (*mcp.CallToolResult, ReadDocumentRangeOutput, error) {
	maxLength := input.MaxLength
	if maxLength <= 0 {
		maxLength = defaultRangeLength
	}

	result, err := s.ports.Reader.ReadRange(ctx, input.FilePath, input.Offset, maxLength)
	if err != nil {
		if recordableFailure(err) {
			return nil, ReadDocumentRangeOutput{Error: err.Error()}, nil
		}
		return nil, ReadDocumentRangeOutput{}, err
	}

	return nil, ReadDocumentRangeOutput{
		Content:        result.Content,
		TotalLength:    result.TotalLength,
		Offset:         result.Offset,
		ReturnedLength: result.ReturnedLength,
		HasMore:        result.HasMore,
	}, nil
}

// handleStreamDocument handles the stream_document tool invocation. Session
// state is caller-held: each call builds a fresh session at the requested
// cursor, so the server keeps nothing between calls and abandoned streams
// cost nothing.
func (s *Server) handleStreamDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StreamDocumentInput,
) (*mcp.CallToolResult, StreamDocumentOutput, error) {
	chunkSize := input.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	wordBoundaries := true
	if input.WordBoundaries != nil {
		wordBoundaries = *input.WordBoundaries
	}

	session := domain.NewStreamSession(uuid.New().String(), input.FilePath, chunkSize, wordBoundaries)
	if input.Cursor > 0 {
		session.Cursor = input.Cursor
	}

	chunk, err := s.ports.Reader.NextChunk(ctx, session)
	if err != nil {
		if recordableFailure(err) {
			return nil, StreamDocumentOutput{SessionID: session.ID, Error: err.Error()}, nil
		}
		return nil, StreamDocumentOutput{}, err
	}

	return nil, StreamDocumentOutput{
		SessionID:       chunk.SessionID,
		Chunk:           chunk.Content,
		CurrentPosition: chunk.CurrentPosition,
		TotalLength:     chunk.TotalLength,
		ProgressPercent: chunk.Progress,
		IsComplete:      chunk.Complete,
	}, nil
}

// handleListBackends handles the list_backends tool invocation.
func (s *Server) handleListBackends(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListBackendsInput,
) (*mcp.CallToolResult, ListBackendsOutput, error) {
	if s.ports.Backends == nil {
		return nil, ListBackendsOutput{Backends: []BackendOutput{}}, nil
	}

	statuses, err := s.ports.Backends.List(ctx)
	if err != nil {
		return nil, ListBackendsOutput{}, err
	}

	output := ListBackendsOutput{Backends: make([]BackendOutput, len(statuses))}
	for i, st := range statuses {
		kinds := make([]string, len(st.Kinds))
		for j, k := range st.Kinds {
			kinds[j] = k.String()
		}
		output.Backends[i] = BackendOutput{
			Name:        st.Name,
			Description: st.Description,
			Class:       st.Class.String(),
			Kinds:       kinds,
			Priority:    st.Priority,
			Available:   st.Available,
			Reason:      st.Reason,
			InstallHint: st.InstallHint,
		}
	}
	return nil, output, nil
}

// handleCacheStats handles the cache_stats tool invocation.
func (s *Server) handleCacheStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CacheStatsInput,
) (*mcp.CallToolResult, CacheStatsOutput, error) {
	if s.ports.Cache == nil {
		return nil, CacheStatsOutput{}, nil
	}

	stats, err := s.ports.Cache.Stats(ctx)
	if err != nil {
		return nil, CacheStatsOutput{}, err
	}

	return nil, CacheStatsOutput{
		Entries:    stats.Entries,
		TotalBytes: stats.TotalBytes,
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Evictions:  stats.Evictions,
	}, nil
}

// handleClearCache handles the clear_cache tool invocation.
func (s *Server) handleClearCache(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ClearCacheInput,
) (*mcp.CallToolResult, ClearCacheOutput, error) {
	if s.ports.Cache == nil {
		return nil, ClearCacheOutput{}, nil
	}

	cleared, err := s.ports.Cache.Clear(ctx)
	if err != nil {
		return nil, ClearCacheOutput{}, err
	}
	return nil, ClearCacheOutput{Cleared: cleared}, nil
}
