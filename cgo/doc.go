// Package cgo provides CGO bindings for native libraries.
// This package isolates all CGO code from the pure Go core.
//
// Sub-packages:
//   - fitz: MuPDF bindings for fast PDF text extraction
package cgo
