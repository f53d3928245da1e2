package extractors

import (
	"fmt"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps MIME types to their extractor.
type Registry struct {
	byMIMEType map[string]driven.TextExtractor
}

// NewRegistry creates a registry from the given extractors.
// Later extractors win when two claim the same MIME type.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	r := &Registry{
		byMIMEType: make(map[string]driven.TextExtractor),
	}
	for _, ext := range extractors {
		for _, mimeType := range ext.SupportedMIMETypes() {
			r.byMIMEType[mimeType] = ext
		}
	}
	return r
}

// ForMIMEType returns the extractor registered for the given type.
func (r *Registry) ForMIMEType(mimeType string) (driven.TextExtractor, error) {
	ext, ok := r.byMIMEType[mimeType]
	if !ok {
		return nil, fmt.Errorf("%w: no extractor for %q", domain.ErrUnsupportedType, mimeType)
	}
	return ext, nil
}
