// Package docx extracts Word document text from the OOXML package:
// paragraph runs from word/document.xml, paragraphs joined by newlines.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles .docx documents. Legacy .doc is a binary format,
// not a ZIP package; it fails here and falls through to the converter
// suite backend.
type Extractor struct{}

// New creates a new Word extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the unique backend identifier.
func (e *Extractor) Name() string {
	return "docx"
}

// Description returns a short profile summary.
func (e *Extractor) Description() string {
	return "Word OOXML reader (paragraph text from word/document.xml)"
}

// Class returns the backend's speed/reliability tier.
func (e *Extractor) Class() domain.BackendClass {
	return domain.ClassMidNative
}

// Kinds returns the document kinds this backend handles.
func (e *Extractor) Kinds() []domain.Kind {
	return []domain.Kind{domain.KindWord}
}

// Priority orders this backend within the mid-native band.
func (e *Extractor) Priority() int {
	return 30
}

// CheckAvailable reports availability. The parser is pure Go and always
// compiled in.
func (e *Extractor) CheckAvailable() error {
	return nil
}

// InstallInstructions returns setup guidance for unavailable backends.
func (e *Extractor) InstallInstructions() string {
	return ""
}

// Extract returns the document's paragraph text, paragraphs joined by
// newlines. Word documents have no physical page markers in the XML, so
// the result is a single page unit; page estimates happen downstream.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening docx package: %w", err)
	}
	defer reader.Close()

	content, err := readEntry(&reader.Reader, "word/document.xml")
	if err != nil {
		return "", err
	}
	if content == nil {
		return "", fmt.Errorf("docx package has no word/document.xml")
	}

	return parseDocumentXML(content)
}

// readEntry returns the named archive entry's bytes, or nil when the
// entry does not exist.
func readEntry(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		return content, nil
	}
	return nil, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts paragraph text from the document XML.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("parsing document xml: %w", err)
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String()), nil
}
