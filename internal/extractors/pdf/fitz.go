package pdf

import (
	"context"
	"fmt"

	"github.com/custodia-labs/skimma-cli/cgo/fitz"
	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// Ensure Fitz implements the interface.
var _ driven.Extractor = (*Fitz)(nil)

// Fitz extracts PDF text in-process through MuPDF. The fastest backend,
// compiled in only when CGO is enabled.
type Fitz struct{}

// NewFitz creates the MuPDF backend.
func NewFitz() *Fitz {
	return &Fitz{}
}

// Name returns the backend identifier.
func (f *Fitz) Name() string {
	return "fitz"
}

// Description returns the backend profile summary.
func (f *Fitz) Description() string {
	return "MuPDF in-process renderer (fastest, requires CGO build)"
}

// Class returns the speed/reliability tier.
func (f *Fitz) Class() domain.BackendClass {
	return domain.ClassFastNative
}

// Kinds returns the document kinds this backend extracts.
func (f *Fitz) Kinds() []domain.Kind {
	return []domain.Kind{domain.KindPDF}
}

// Priority orders the backend within the fast-native band.
func (f *Fitz) Priority() int {
	return 5
}

// CheckAvailable reports whether MuPDF is compiled into this binary.
func (f *Fitz) CheckAvailable() error {
	if !fitz.Available() {
		return fmt.Errorf("%w: built without CGO", domain.ErrExtractorUnavailable)
	}
	return nil
}

// InstallInstructions tells the user how to enable the backend.
func (f *Fitz) InstallInstructions() string {
	return "rebuild with CGO_ENABLED=1 to compile in MuPDF"
}

// Extract returns the document text, pages joined by the page separator.
func (f *Fitz) Extract(ctx context.Context, path string) (string, error) {
	text, err := fitz.ExtractText(ctx, path)
	if err != nil {
		return "", err
	}
	return sanitizeUTF8(text), nil
}
