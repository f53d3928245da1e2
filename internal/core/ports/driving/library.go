package driving

import (
	"context"
	"time"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
)

// LibraryService manages uploaded files and their documents.
type LibraryService interface {
	// Upload stores the raw bytes and creates a file record.
	Upload(ctx context.Context, name, mimeType string, data []byte) (*domain.File, error)

	// GetFile retrieves a file by ID.
	GetFile(ctx context.Context, fileID string) (*domain.File, error)

	// ListFiles returns all uploaded files.
	ListFiles(ctx context.Context) ([]domain.File, error)

	// DeleteFile removes a file, its stored blob, and every dependent
	// document and embedding.
	DeleteFile(ctx context.Context, fileID string) error

	// ListDocuments returns all ingested documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)

	// GetDetails returns display metadata for a document.
	GetDetails(ctx context.Context, documentID string) (*DocumentDetails, error)
}

// DocumentDetails is display metadata for a document.
type DocumentDetails struct {
	ID             string
	Name           string
	Type           string
	FileID         string
	ContentLength  int
	EmbeddingCount int
	CreatedAt      time.Time
}
