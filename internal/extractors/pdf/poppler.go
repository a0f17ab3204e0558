package pdf

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// Ensure Poppler implements the interface.
var _ driven.Extractor = (*Poppler)(nil)

// Poppler extracts PDF text by invoking pdftotext from poppler-utils.
// pdftotext emits form feeds between pages natively, which matches the
// page separator.
type Poppler struct {
	runner driven.CommandRunner
}

// NewPoppler creates the pdftotext backend over a command runner.
func NewPoppler(runner driven.CommandRunner) *Poppler {
	return &Poppler{runner: runner}
}

// Name returns the backend identifier.
func (p *Poppler) Name() string {
	return "poppler"
}

// Description returns the backend profile summary.
func (p *Poppler) Description() string {
	return "pdftotext from poppler-utils (fast, external tool)"
}

// Class returns the speed/reliability tier.
func (p *Poppler) Class() domain.BackendClass {
	return domain.ClassMidNative
}

// Kinds returns the document kinds this backend extracts.
func (p *Poppler) Kinds() []domain.Kind {
	return []domain.Kind{domain.KindPDF}
}

// Priority orders the backend within the mid-native band.
func (p *Poppler) Priority() int {
	return 20
}

// CheckAvailable reports whether pdftotext is installed.
func (p *Poppler) CheckAvailable() error {
	if _, err := p.runner.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions tells the user how to install pdftotext.
func (p *Poppler) InstallInstructions() string {
	return "install pdftotext: brew install poppler (macOS) or apt install poppler-utils (Linux)"
}

// Extract returns the document text, pages separated by form feeds.
func (p *Poppler) Extract(ctx context.Context, path string) (string, error) {
	out, err := p.runner.Run(ctx, "pdftotext", "-enc", "UTF-8", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return sanitizeUTF8(string(out)), nil
}
