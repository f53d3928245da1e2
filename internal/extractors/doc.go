// Package extractors provides text extraction implementations and the
// registry that selects one by MIME type.
//
// Extraction is the step before ingestion: a File's raw bytes become the
// plain text the pipeline cleans, chunks and embeds. Failures here are
// reported as domain.ErrExtraction and nothing is ingested.
package extractors
