package driven

import "context"

// TextExtractor converts raw file bytes into plain text.
// Extraction runs before the ingestion pipeline; a failure here is
// reported as domain.ErrExtraction and nothing is ingested.
type TextExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Extract converts the raw bytes to plain text.
	Extract(ctx context.Context, data []byte) (string, error)
}

// ExtractorRegistry selects an extractor for a MIME type.
type ExtractorRegistry interface {
	// ForMIMEType returns the extractor registered for the given type.
	// Returns domain.ErrUnsupportedType when none matches.
	ForMIMEType(mimeType string) (TextExtractor, error)
}
