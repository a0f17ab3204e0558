// Package domain defines the core business entities for Skimma.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Kind: A supported office document family
//   - Extraction: Fully extracted text plus its character index
//   - StreamSession: Caller-held cursor state for a chunk stream
//   - ReadResult / PageResult / StreamChunk: The three read shapes
//   - BackendClass: Speed/reliability tier of an extraction backend
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
