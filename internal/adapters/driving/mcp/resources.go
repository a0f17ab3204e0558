package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Skimma resources.
	uriScheme = "skimma://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the backend catalogue.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "backends",
		Name:        "backends",
		Description: "Extraction backend catalogue with availability and install instructions",
		MIMEType:    "application/json",
	}, s.handleBackendsResource)

	// Static resource for cache statistics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cache/stats",
		Name:        "cache-stats",
		Description: "Extraction cache entries, retained bytes and traffic counters",
		MIMEType:    "application/json",
	}, s.handleCacheStatsResource)
}

// handleBackendsResource returns the backend catalogue as JSON.
func (s *Server) handleBackendsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Backends == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	statuses, err := s.ports.Backends.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing backends: %w", err)
	}

	// Build simplified catalogue entries.
	type backendInfo struct {
		Name        string `json:"name"`
		Class       string `json:"class"`
		Priority    int    `json:"priority"`
		Available   bool   `json:"available"`
		Reason      string `json:"reason,omitempty"`
		InstallHint string `json:"install_hint,omitempty"`
	}

	infos := make([]backendInfo, len(statuses))
	for i, st := range statuses {
		infos[i] = backendInfo{
			Name:        st.Name,
			Class:       st.Class.String(),
			Priority:    st.Priority,
			Available:   st.Available,
			Reason:      st.Reason,
			InstallHint: st.InstallHint,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling backends: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCacheStatsResource returns cache statistics as JSON.
func (s *Server) handleCacheStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Cache == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	stats, err := s.ports.Cache.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading cache stats: %w", err)
	}

	info := struct {
		Entries    int    `json:"entries"`
		TotalBytes int64  `json:"total_bytes"`
		Hits       uint64 `json:"hits"`
		Misses     uint64 `json:"misses"`
		Evictions  uint64 `json:"evictions"`
	}{
		Entries:    stats.Entries,
		TotalBytes: stats.TotalBytes,
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Evictions:  stats.Evictions,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling cache stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
