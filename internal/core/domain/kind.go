package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Kind identifies a supported office document family.
type Kind string

const (
	// KindPDF covers .pdf files.
	KindPDF Kind = "pdf"

	// KindExcel covers .xlsx and legacy .xls workbooks.
	KindExcel Kind = "excel"

	// KindWord covers .docx and legacy .doc documents.
	KindWord Kind = "word"

	// KindPowerPoint covers .pptx and legacy .ppt presentations.
	KindPowerPoint Kind = "powerpoint"
)

// kindByExtension maps lower-case file extensions to document kinds.
var kindByExtension = map[string]Kind{
	".pdf":  KindPDF,
	".xlsx": KindExcel,
	".xls":  KindExcel,
	".docx": KindWord,
	".doc":  KindWord,
	".pptx": KindPowerPoint,
	".ppt":  KindPowerPoint,
}

// KindFromPath determines the document kind from the file extension.
// Returns ErrUnsupportedKind wrapped with the offending extension and the
// supported set for anything outside the office document family.
func KindFromPath(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if kind, ok := kindByExtension[ext]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q (supported: %s)",
		ErrUnsupportedKind, ext, strings.Join(SupportedExtensions(), ", "))
}

// SupportedExtensions returns the recognised file extensions, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(kindByExtension))
	for ext := range kindByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// UnitName returns the label for the kind's natural page unit.
// PDFs and Word documents have pages, workbooks have sheets and
// presentations have slides.
func (k Kind) UnitName() string {
	switch k {
	case KindExcel:
		return "sheet"
	case KindPowerPoint:
		return "slide"
	default:
		return "page"
	}
}
