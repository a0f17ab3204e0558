// Package xlsx extracts workbook text by rendering each sheet as a
// Markdown table. Sheets are the workbook's page units and are joined
// by the page separator, so sheet N is addressable as page N.
package xlsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles .xlsx workbooks. Legacy .xls files are not ZIP
// packages and fail per file; nothing further down the ladder reads
// them either, so they surface as extraction failures.
type Extractor struct{}

// New creates a new workbook extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the unique backend identifier.
func (e *Extractor) Name() string {
	return "excelize"
}

// Description returns a short profile summary.
func (e *Extractor) Description() string {
	return "Excel workbook reader (sheets rendered as Markdown tables)"
}

// Class returns the backend's speed/reliability tier.
func (e *Extractor) Class() domain.BackendClass {
	return domain.ClassMidNative
}

// Kinds returns the document kinds this backend handles.
func (e *Extractor) Kinds() []domain.Kind {
	return []domain.Kind{domain.KindExcel}
}

// Priority orders this backend within the mid-native band.
func (e *Extractor) Priority() int {
	return 30
}

// CheckAvailable reports availability. The reader is pure Go and always
// compiled in.
func (e *Extractor) CheckAvailable() error {
	return nil
}

// InstallInstructions returns setup guidance for unavailable backends.
func (e *Extractor) InstallInstructions() string {
	return ""
}

// Extract renders every sheet as "## Sheet: NAME" followed by a
// Markdown table, sheets joined by the page separator.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	blocks := make([]string, 0, len(sheets))
	for _, name := range sheets {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		var block strings.Builder
		fmt.Fprintf(&block, "## Sheet: %s\n\n", name)

		rows, err := book.GetRows(name)
		if err != nil {
			// A single damaged sheet should not sink the workbook.
			block.WriteString("*Sheet could not be read*")
		} else {
			block.WriteString(markdownTable(rows))
		}
		blocks = append(blocks, block.String())
	}

	return strings.Join(blocks, domain.PageSeparator), nil
}

// markdownTable renders rows as a Markdown table: the first row becomes
// the header, followed by a separator row and the data rows. Ragged
// rows are padded to the widest row so every line has the same number
// of columns.
func markdownTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return "Empty sheet"
	}

	var table strings.Builder
	writeRow := func(row []string) {
		table.WriteString("| ")
		for col := 0; col < width; col++ {
			if col < len(row) {
				table.WriteString(row[col])
			}
			table.WriteString(" | ")
		}
		table.WriteString("\n")
	}

	writeRow(rows[0])
	table.WriteString("| ")
	for col := 0; col < width; col++ {
		table.WriteString("--- | ")
	}
	table.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return table.String()
}
