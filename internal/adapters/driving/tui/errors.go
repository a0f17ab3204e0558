package tui

import "errors"

// ErrMissingReader is returned when the document reader is not provided.
var ErrMissingReader = errors.New("tui: document reader is required")

// ErrMissingPath is returned when no document path is given.
var ErrMissingPath = errors.New("tui: document path is required")
