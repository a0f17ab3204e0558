package pptx

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// slideXML wraps text runs in the minimal slide markup the parser
// walks: shape tree, text body, one paragraph per run.
func slideXML(runs ...string) string {
	body := ""
	for _, run := range runs {
		body += fmt.Sprintf("<a:p><a:r><a:t>%s</a:t></a:r></a:p>", run)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree><p:sp><p:txBody>` + body + `</p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`
}

// writeTestPPTX creates a presentation package on disk. Slide XML is
// written in map-iteration-independent entry order: the caller passes
// entries as (archive name, content) pairs so out-of-order archives can
// be built deliberately.
func writeTestPPTX(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.pptx")
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	w := zip.NewWriter(out)

	contentTypes, err := w.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))
	require.NoError(t, err)

	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return path
}

func TestExtractor_Metadata(t *testing.T) {
	e := New()

	assert.Equal(t, "pptx", e.Name())
	assert.Equal(t, domain.ClassMidNative, e.Class())
	assert.Equal(t, 30, e.Priority())
	assert.Equal(t, []domain.Kind{domain.KindPowerPoint}, e.Kinds())
	assert.NoError(t, e.CheckAvailable())
	assert.Empty(t, e.InstallInstructions())
}

func TestExtractor_Extract(t *testing.T) {
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("Welcome", "Agenda for today"),
		"ppt/slides/slide2.xml": slideXML("Questions?"),
	})

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Welcome Agenda for today\fQuestions?", text)
}

func TestExtractor_Extract_NumericSlideOrder(t *testing.T) {
	// A lexical sort would yield slide1, slide10, slide2.
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide10.xml": slideXML("ten"),
		"ppt/slides/slide2.xml":  slideXML("two"),
		"ppt/slides/slide1.xml":  slideXML("one"),
	})

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "one\ftwo\ften", text)
}

func TestExtractor_Extract_EmptySlideKeepsSlot(t *testing.T) {
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("first"),
		"ppt/slides/slide2.xml": slideXML(),
		"ppt/slides/slide3.xml": slideXML("third"),
	})

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "first\f\fthird", text)

	extraction := domain.NewExtraction(path, domain.KindPowerPoint, "pptx", text)
	assert.Equal(t, 3, extraction.PageCount())
}

func TestExtractor_Extract_IgnoresNonSlideEntries(t *testing.T) {
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml":             slideXML("content"),
		"ppt/notesSlides/notesSlide1.xml":   slideXML("speaker notes"),
		"ppt/slideLayouts/slideLayout1.xml": slideXML("layout text"),
	})

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "content", text)
}

func TestExtractor_Extract_NoSlides(t *testing.T) {
	path := writeTestPPTX(t, nil)

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no slides")
}

func TestExtractor_Extract_NotAZip(t *testing.T) {
	// Legacy .ppt files take this path: binary container, not OOXML.
	path := filepath.Join(t.TempDir(), "deck.ppt")
	require.NoError(t, os.WriteFile(path, []byte("\xd0\xcf\x11\xe0 legacy compound file"), 0o644))

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening pptx package")
}

func TestExtractor_Extract_MalformedSlideXML(t *testing.T) {
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml": "<p:sld><unclosed",
	})

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slide 1")
}

func TestSlideText_RunsSpaceJoined(t *testing.T) {
	text, err := slideText([]byte(slideXML("Title", "Subtitle")))
	require.NoError(t, err)
	assert.Equal(t, "Title Subtitle", text)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = New()
}
