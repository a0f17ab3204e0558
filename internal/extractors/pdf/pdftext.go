package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	ledongthuc "github.com/ledongthuc/pdf"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// encodingSniffBytes is how much of the file head the CMap sniff reads.
const encodingSniffBytes = 8192

// cjkCMapNames lists CMap encodings the pure Go parser cannot decode.
// A file referencing one fails honestly instead of emitting mojibake.
var cjkCMapNames = []string{
	"GBK-EUC-H", "GBK-EUC-V", "GB-EUC-H", "GB-EUC-V",
	"UniGB-UCS2-H", "UniGB-UCS2-V", "UniGB-UTF16-H", "UniGB-UTF16-V",
	"B5pc-H", "B5pc-V", "ETen-B5-H", "ETen-B5-V",
	"CNS-EUC-H", "CNS-EUC-V", "UniCNS-UCS2-H", "UniCNS-UCS2-V",
	"90ms-RKSJ-H", "90ms-RKSJ-V", "90msp-RKSJ-H", "90msp-RKSJ-V",
	"UniJIS-UCS2-H", "UniJIS-UCS2-V", "UniJIS-UTF16-H", "UniJIS-UTF16-V",
	"KSC-EUC-H", "KSC-EUC-V", "KSCms-UHC-H", "KSCms-UHC-V",
	"UniKS-UCS2-H", "UniKS-UCS2-V", "UniKS-UTF16-H", "UniKS-UTF16-V",
}

// Ensure PDFText implements the interface.
var _ driven.Extractor = (*PDFText)(nil)

// PDFText extracts PDF text with a pure Go parser. The slowest backend and
// the backstop: always available, whatever the build or the host.
type PDFText struct{}

// NewPDFText creates the pure Go backend.
func NewPDFText() *PDFText {
	return &PDFText{}
}

// Name returns the backend identifier.
func (e *PDFText) Name() string {
	return "pdftext"
}

// Description returns the backend profile summary.
func (e *PDFText) Description() string {
	return "pure Go parser (slowest, always available, limited encoding support)"
}

// Class returns the speed/reliability tier.
func (e *PDFText) Class() domain.BackendClass {
	return domain.ClassPureFallback
}

// Kinds returns the document kinds this backend extracts.
func (e *PDFText) Kinds() []domain.Kind {
	return []domain.Kind{domain.KindPDF}
}

// Priority orders the backend within the pure-fallback band.
func (e *PDFText) Priority() int {
	return 95
}

// CheckAvailable always succeeds; the parser is compiled in.
func (e *PDFText) CheckAvailable() error {
	return nil
}

// InstallInstructions is empty; nothing to install.
func (e *PDFText) InstallInstructions() string {
	return ""
}

// Extract returns the document text, pages joined by the page separator.
// Files referencing a CJK CMap fail with domain.ErrUnsupportedEncoding
// before parsing starts.
func (e *PDFText) Extract(ctx context.Context, path string) (string, error) {
	if err := sniffUnsupportedEncoding(path); err != nil {
		return "", err
	}
	text, err := extractPlainText(ctx, path)
	if err != nil {
		return "", err
	}
	return sanitizeUTF8(text), nil
}

// extractPlainText walks the pages, skipping ones the parser cannot read.
// The library panics on malformed files; recover turns that into an error.
func extractPlainText(ctx context.Context, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, reader, err := ledongthuc.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		if cerr := ctx.Err(); cerr != nil {
			return "", cerr
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, perr := page.GetPlainText(nil)
		if perr != nil {
			// A single unreadable page keeps its slot so page
			// numbering stays aligned.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, domain.PageSeparator), nil
}

// sniffUnsupportedEncoding reads the file head and fails when a CJK CMap
// name appears: the parser would emit garbage rather than text for those.
func sniffUnsupportedEncoding(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	buf := make([]byte, encodingSniffBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("reading pdf head: %w", err)
	}

	head := buf[:n]
	for _, name := range cjkCMapNames {
		if bytes.Contains(head, []byte(name)) {
			return fmt.Errorf("%w: PDF uses CJK CMap %s", domain.ErrUnsupportedEncoding, name)
		}
	}
	return nil
}

// sanitizeUTF8 replaces invalid byte sequences so every later slice of the
// text is valid UTF-8.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "�")
}
