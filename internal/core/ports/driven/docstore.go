package driven

import (
	"context"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
)

// FileStore persists uploaded file records.
// Backed by SQLite for metadata storage.
type FileStore interface {
	// CreateFile stores a new file record.
	CreateFile(ctx context.Context, file *domain.File) error

	// GetFile retrieves a file by ID.
	// Returns domain.ErrNotFound if the file does not exist.
	GetFile(ctx context.Context, id string) (*domain.File, error)

	// ListFiles returns all file records.
	ListFiles(ctx context.Context) ([]domain.File, error)

	// DeleteFile removes a file and cascades to its documents and their
	// embeddings, leaving no orphans.
	// Returns domain.ErrNotFound if the file does not exist.
	DeleteFile(ctx context.Context, id string) error
}

// DocumentStore persists documents and their chunk embeddings.
//
// The ingestion pipeline treats this store as append-only: embeddings are
// inserted one at a time as chunks succeed and are never updated. There is
// no uniqueness constraint on (document, chunk); re-ingesting the same file
// produces duplicate rows.
type DocumentStore interface {
	// CreateDocument stores a new document.
	CreateDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if the document does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// StoreEmbedding appends one embedding row.
	// Returns domain.ErrNotFound if the owning document is gone, which
	// callers must tolerate (deletion may race a running ingestion).
	StoreEmbedding(ctx context.Context, emb *domain.Embedding) error

	// ListEmbeddings returns all embeddings across all documents.
	ListEmbeddings(ctx context.Context) ([]domain.Embedding, error)

	// ListEmbeddingsForDocument returns the embeddings owned by a document.
	ListEmbeddingsForDocument(ctx context.Context, documentID string) ([]domain.Embedding, error)
}
