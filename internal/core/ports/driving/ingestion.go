package driving

import (
	"context"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
)

// IngestionService turns raw extracted text into a persisted document
// plus its chunk embeddings.
type IngestionService interface {
	// Ingest runs the pipeline on already-extracted text for a file:
	// clean, chunk, embed, persist, verify.
	//
	// Per-chunk embedding failures are recovered locally and aggregated
	// into the report; the run as a whole fails only when the cleaned
	// text is empty (domain.ErrEmptyContent) or no chunk at all produced
	// an embedding (domain.ErrNoEmbeddings).
	Ingest(ctx context.Context, fileID, rawText string) (*domain.IngestionReport, error)

	// IngestFile loads the stored blob for a file, extracts its text and
	// runs Ingest on the result.
	IngestFile(ctx context.Context, fileID string) (*domain.IngestionReport, error)
}
