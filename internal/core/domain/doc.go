// Package domain defines the core business entities for Parchment.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - File: An uploaded source file
//   - Document: The cleaned text of an ingested file
//   - Embedding: A chunk of document text paired with its vector
//   - IngestionReport: Counters describing an ingestion run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
