//go:build cgo

package fitz

import (
	"context"
	"fmt"
	"strings"

	gofitz "github.com/gen2brain/go-fitz"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// Available reports whether MuPDF support is compiled into this binary.
func Available() bool {
	return true
}

// ExtractText renders every page of the document at path and returns the
// page texts joined by the page separator. Cancellation is honoured
// between pages; MuPDF itself cannot be interrupted mid-page.
func ExtractText(ctx context.Context, path string) (string, error) {
	doc, err := gofitz.New(path)
	if err != nil {
		return "", fmt.Errorf("mupdf: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("mupdf: page %d: %w", i+1, err)
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, domain.PageSeparator), nil
}
