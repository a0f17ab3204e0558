// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Extractor: One extraction backend for a document kind
//   - ExtractorRegistry: Priority-ordered backend catalogue
//   - ExtractionCache: Single-flight memoisation of extracted text
//   - PathResolver: Canonicalises request paths and confirms existence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - CommandRunner: Executes external extraction tools; only backends
//     that shell out require it
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
