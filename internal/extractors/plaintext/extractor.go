// Package plaintext provides a pass-through extractor for text formats.
package plaintext

import (
	"context"

	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor handles plain text and markdown files.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/markdown",
	}
}

// Extract converts the raw bytes to a string as-is.
// Markdown markup survives extraction; the cleaning stage strips what the
// allow-list disallows.
func (e *Extractor) Extract(_ context.Context, data []byte) (string, error) {
	return string(data), nil
}
