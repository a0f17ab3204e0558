package docx

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// writeTestDOCX creates a minimal valid DOCX package on disk and
// returns its path.
func writeTestDOCX(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "letter.docx")
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

	if documentXML != "" {
		doc, err := w.Create("word/document.xml")
		require.NoError(t, err)
		_, err = doc.Write([]byte(documentXML))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return path
}

func TestExtractor_Metadata(t *testing.T) {
	e := New()

	assert.Equal(t, "docx", e.Name())
	assert.Equal(t, domain.ClassMidNative, e.Class())
	assert.Equal(t, 30, e.Priority())
	assert.Equal(t, []domain.Kind{domain.KindWord}, e.Kinds())
	assert.NoError(t, e.CheckAvailable())
	assert.Empty(t, e.InstallInstructions())
}

func TestExtractor_Extract(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>
</w:body>
</w:document>`
	path := writeTestDOCX(t, docXML)

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSecond paragraph", text)
}

func TestExtractor_Extract_MultipleRuns(t *testing.T) {
	// Runs carry formatting boundaries; their text concatenates without
	// extra separators.
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p>
<w:r><w:t>Hello </w:t></w:r>
<w:r><w:t>World</w:t></w:r>
</w:p>
</w:body>
</w:document>`
	path := writeTestDOCX(t, docXML)

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", text)
}

func TestExtractor_Extract_EmptyBody(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
</w:body>
</w:document>`
	path := writeTestDOCX(t, docXML)

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractor_Extract_NotAZip(t *testing.T) {
	// Legacy .doc files take this path: binary container, not OOXML.
	path := filepath.Join(t.TempDir(), "memo.doc")
	require.NoError(t, os.WriteFile(path, []byte("\xd0\xcf\x11\xe0 legacy compound file"), 0o644))

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening docx package")
}

func TestExtractor_Extract_MissingDocumentXML(t *testing.T) {
	path := writeTestDOCX(t, "")

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestExtractor_Extract_MalformedXML(t *testing.T) {
	path := writeTestDOCX(t, "<w:document><unclosed")

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing document xml")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = New()
}
