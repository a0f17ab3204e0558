// Package pptx extracts presentation text from the OOXML package: text
// runs from each ppt/slides/slideN.xml entry, slides joined by the page
// separator in numeric order so slide N is addressable as page N.
package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// slideEntry matches slide parts inside the package and captures the
// slide number.
var slideEntry = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles .pptx presentations. Legacy .ppt is a binary
// format, not a ZIP package; it fails here and falls through to the
// converter suite backend.
type Extractor struct{}

// New creates a new PowerPoint extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the unique backend identifier.
func (e *Extractor) Name() string {
	return "pptx"
}

// Description returns a short profile summary.
func (e *Extractor) Description() string {
	return "PowerPoint OOXML reader (text runs per slide)"
}

// Class returns the backend's speed/reliability tier.
func (e *Extractor) Class() domain.BackendClass {
	return domain.ClassMidNative
}

// Kinds returns the document kinds this backend handles.
func (e *Extractor) Kinds() []domain.Kind {
	return []domain.Kind{domain.KindPowerPoint}
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

// Extract returns the slide texts joined by the page separator. Slides
// sort by their entry number rather than archive order: a lexical sort
// would place slide10 before slide2.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening pptx package: %w", err)
	}
	defer reader.Close()

	type slide struct {
		number int
		file   *zip.File
	}
	var slides []slide
	for _, file := range reader.File {
		match := slideEntry.FindStringSubmatch(file.Name)
		if match == nil {
			continue
		}
		number, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		slides = append(slides, slide{number: number, file: file})
	}
	if len(slides) == 0 {
		return "", fmt.Errorf("pptx package has no slides")
	}

	sort.Slice(slides, func(i, j int) bool {
		return slides[i].number < slides[j].number
	})

	texts := make([]string, 0, len(slides))
	for _, s := range slides {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		rc, err := s.file.Open()
		if err != nil {
			return "", fmt.Errorf("opening slide %d: %w", s.number, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading slide %d: %w", s.number, err)
		}

		text, err := slideText(content)
		if err != nil {
			return "", fmt.Errorf("slide %d: %w", s.number, err)
		}

		// A slide with no text keeps its empty slot so slide numbering
		// stays aligned with page numbers.
		texts = append(texts, text)
	}

	return strings.Join(texts, domain.PageSeparator), nil
}

// slideText gathers the text runs (<a:t> elements) of one slide. Each
// run contributes its text followed by a single space; the result is
// trimmed.
func slideText(content []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var text strings.Builder
	inRun := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing slide xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inRun = false
				text.WriteString(" ")
			}
		case xml.CharData:
			if inRun {
				text.Write(t)
			}
		}
	}

	return strings.TrimSpace(text.String()), nil
}
