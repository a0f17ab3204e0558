package xlsx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// writeWorkbook builds a two-sheet fixture: a data sheet with a ragged
// last row and a completely empty sheet.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	require.NoError(t, book.SetCellValue("Sheet1", "A1", "Name"))
	require.NoError(t, book.SetCellValue("Sheet1", "B1", "Qty"))
	require.NoError(t, book.SetCellValue("Sheet1", "A2", "Ada"))
	require.NoError(t, book.SetCellValue("Sheet1", "B2", 36))
	require.NoError(t, book.SetCellValue("Sheet1", "A3", "OnlyA"))

	_, err := book.NewSheet("Empty")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, book.SaveAs(path))
	return path
}

func TestExtractor_Metadata(t *testing.T) {
	e := New()

	assert.Equal(t, "excelize", e.Name())
	assert.Equal(t, domain.ClassMidNative, e.Class())
	assert.Equal(t, 30, e.Priority())
	assert.Equal(t, []domain.Kind{domain.KindExcel}, e.Kinds())
	assert.NoError(t, e.CheckAvailable())
	assert.Empty(t, e.InstallInstructions())
	assert.NotEmpty(t, e.Description())
}

func TestExtractor_Extract(t *testing.T) {
	path := writeWorkbook(t)

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	want := "## Sheet: Sheet1\n\n" +
		"| Name | Qty | \n" +
		"| --- | --- | \n" +
		"| Ada | 36 | \n" +
		"| OnlyA |  | \n" +
		domain.PageSeparator +
		"## Sheet: Empty\n\nEmpty sheet"
	assert.Equal(t, want, text)
}

func TestExtractor_Extract_SheetsArePages(t *testing.T) {
	path := writeWorkbook(t)

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	extraction := domain.NewExtraction(path, domain.KindExcel, "excelize", text)
	require.Equal(t, 2, extraction.PageCount())

	pages := extraction.Pages()
	assert.Contains(t, pages[0], "## Sheet: Sheet1")
	assert.Contains(t, pages[1], "Empty sheet")
}

func TestExtractor_Extract_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xls")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := New().Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}

func TestExtractor_Extract_Cancelled(t *testing.T) {
	path := writeWorkbook(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Extract(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMarkdownTable(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "no rows",
			rows: nil,
			want: "Empty sheet",
		},
		{
			name: "rows without cells",
			rows: [][]string{{}, {}},
			want: "Empty sheet",
		},
		{
			name: "header only",
			rows: [][]string{{"ID", "Label"}},
			want: "| ID | Label | \n| --- | --- | \n",
		},
		{
			name: "ragged rows pad to the widest",
			rows: [][]string{{"A"}, {"1", "2", "3"}},
			want: "| A |  |  | \n| --- | --- | --- | \n| 1 | 2 | 3 | \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markdownTable(tt.rows))
		})
	}
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = New()
}
