// Package docconv wraps the docconv converter suite as the
// compatibility backend: slower than the native readers but tolerant of
// malformed files, and the only route for the legacy .doc and .ppt
// binary formats.
package docconv

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sajari "code.sajari.com/docconv"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor converts documents through docconv. The suite is compiled
// in and always registers as available; formats that shell out to
// external tools (.doc needs wv, .pdf needs pdftotext) fail per file
// when the tool is missing.
type Extractor struct{}

// New creates a new converter suite extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the unique backend identifier.
func (e *Extractor) Name() string {
	return "docconv"
}

// Description returns a short profile summary.
func (e *Extractor) Description() string {
	return "docconv converter suite (tolerant of malformed and legacy formats)"
}

// Class returns the backend's speed/reliability tier.
func (e *Extractor) Class() domain.BackendClass {
	return domain.ClassCompatNative
}

// Kinds returns the document kinds this backend handles. docconv has no
// spreadsheet converter, so Excel is not covered.
func (e *Extractor) Kinds() []domain.Kind {
	return []domain.Kind{domain.KindPDF, domain.KindWord, domain.KindPowerPoint}
}

// Priority orders this backend within the compat-native band.
func (e *Extractor) Priority() int {
	return 60
}

// CheckAvailable reports availability. The suite itself is pure Go.
func (e *Extractor) CheckAvailable() error {
	return nil
}

// InstallInstructions returns setup guidance for unavailable backends.
func (e *Extractor) InstallInstructions() string {
	return ""
}

// Extract converts the document and returns its body text. docconv
// picks the converter from the file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	res, err := sajari.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("docconv: %w", err)
	}

	return sanitizeUTF8(res.Body), nil
}

// sanitizeUTF8 replaces invalid byte sequences so every later slice of
// the text stays valid UTF-8.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "�")
}
