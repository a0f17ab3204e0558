package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

func TestResolver_Resolve_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 content"), 0644))

	file, err := New("").Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, path, file.AbsPath)
	assert.Equal(t, int64(16), file.SizeBytes)
	assert.False(t, file.ModTime.IsZero())
}

func TestResolver_Resolve_RelativeAgainstRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.docx"), []byte("x"), 0644))

	file, err := New(dir).Resolve("notes.docx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.docx"), file.AbsPath)
}

func TestResolver_Resolve_CleansPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.pptx"), []byte("x"), 0644))

	// Both spellings must canonicalise to the same cache key.
	direct, err := New(dir).Resolve("deck.pptx")
	require.NoError(t, err)
	dotted, err := New(dir).Resolve("sub/../deck.pptx")
	require.NoError(t, err)

	assert.Equal(t, direct.AbsPath, dotted.AbsPath)
}

func TestResolver_Resolve_Missing(t *testing.T) {
	_, err := New(t.TempDir()).Resolve("ghost.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestResolver_Resolve_Directory(t *testing.T) {
	dir := t.TempDir()
	_, err := New("").Resolve(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}
