// Package fitz provides CGO bindings for MuPDF via go-fitz.
// It backs the fast-native PDF extraction backend.
//
// Build requires:
//   - CGO enabled (go-fitz bundles static MuPDF libraries)
//   - A C compiler
package fitz
