//go:build !cgo

package fitz

import (
	"context"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// Available reports whether MuPDF support is compiled into this binary.
// This is a stub for builds without CGO.
func Available() bool {
	return false
}

// ExtractText extracts document text via MuPDF.
// This is a stub for builds without CGO.
func ExtractText(_ context.Context, _ string) (string, error) {
	return "", domain.ErrNotImplemented
}
