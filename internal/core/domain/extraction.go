package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// PageSeparator joins the natural units of a multi-unit document inside the
// extracted text: PDF pages, workbook sheets, presentation slides. pdftotext
// emits it natively; the other backends insert it between units.
const PageSeparator = "\f"

// Extraction is the fully extracted text of one document plus the
// character-to-byte offset index that makes every later slice O(1) and
// UTF-8 safe.
//
// An Extraction is immutable once built and therefore safe to share between
// any number of concurrent readers without synchronisation. The cache
// populates it exactly once per file per process lifetime.
type Extraction struct {
	// Path is the canonical absolute path the text was extracted from.
	Path string

	// Kind is the document family.
	Kind Kind

	// Backend names the extraction backend that produced the text.
	Backend string

	// ExtractedAt records when the extraction completed.
	ExtractedAt time.Time

	content   string
	charIndex []int
}

// NewExtraction builds the character index in a single linear pass over
// content. The index holds the byte offset of every character boundary plus
// a final sentinel equal to len(content), so its length is always the
// character count + 1.
func NewExtraction(path string, kind Kind, backend string, content string) *Extraction {
	index := make([]int, 0, len(content)+1)
	for i := range content {
		index = append(index, i)
	}
	index = append(index, len(content))

	return &Extraction{
		Path:        path,
		Kind:        kind,
		Backend:     backend,
		ExtractedAt: time.Now(),
		content:     content,
		charIndex:   index,
	}
}

// Content returns the full extracted text.
func (e *Extraction) Content() string {
	return e.content
}

// CharLen returns the number of characters in the text.
func (e *Extraction) CharLen() int {
	return len(e.charIndex) - 1
}

// ByteLen returns the size of the text in bytes.
func (e *Extraction) ByteLen() int {
	return len(e.content)
}

// Slice returns the text between two character offsets, clamped to the
// valid range. A start at or past the end yields the empty string. The
// result is always valid UTF-8 because both cut points come from the
// character index.
func (e *Extraction) Slice(startChar, endChar int) string {
	total := e.CharLen()
	if startChar < 0 {
		startChar = 0
	}
	if endChar > total {
		endChar = total
	}
	if startChar >= endChar {
		return ""
	}
	return e.content[e.charIndex[startChar]:e.charIndex[endChar]]
}

// RuneAt returns the character starting at the given character offset, or
// utf8.RuneError when the offset is outside the text.
func (e *Extraction) RuneAt(charOffset int) rune {
	if charOffset < 0 || charOffset >= e.CharLen() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(e.content[e.charIndex[charOffset]:])
	return r
}

// PageCount returns the number of form-feed separated units in the text.
// A document with no separators counts as a single unit.
func (e *Extraction) PageCount() int {
	return strings.Count(e.content, PageSeparator) + 1
}

// Pages splits the text into its form-feed separated units. The returned
// strings share the extraction's backing storage.
func (e *Extraction) Pages() []string {
	return strings.Split(e.content, PageSeparator)
}
