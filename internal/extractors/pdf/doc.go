// Package pdf implements the PDF extraction ladder: MuPDF in-process
// (fastest, CGO builds only), pdftotext via poppler-utils (external tool),
// and a pure Go parser that is always available as the backstop.
package pdf
