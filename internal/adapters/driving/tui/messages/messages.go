// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// ChunkLoaded carries the next streamed chunk of document text back to the
// model. Err is set when the advance failed; Chunk is nil in that case.
type ChunkLoaded struct {
	Chunk *domain.StreamChunk
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
