package services

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driving"
	"github.com/parchment-labs/parchment-cli/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService manages uploaded files and their documents.
type LibraryService struct {
	fileStore driven.FileStore
	docStore  driven.DocumentStore
	blobStore driven.BlobStore
}

// NewLibraryService creates a new library service.
func NewLibraryService(
	fileStore driven.FileStore,
	docStore driven.DocumentStore,
	blobStore driven.BlobStore,
) *LibraryService {
	return &LibraryService{
		fileStore: fileStore,
		docStore:  docStore,
		blobStore: blobStore,
	}
}

// Upload stores the raw bytes and creates a file record.
// An empty mimeType is detected from the file extension.
func (s *LibraryService) Upload(ctx context.Context, name, mimeType string, data []byte) (*domain.File, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: file name is required", domain.ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file %q is empty", domain.ErrInvalidInput, name)
	}

	if mimeType == "" {
		mimeType = detectMIMEType(name)
	} else if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		// Strip parameters like "; charset=utf-8".
		mimeType = parsed
	}

	ref, err := s.blobStore.Save(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("saving file bytes: %w", err)
	}

	file := &domain.File{
		ID:         uuid.NewString(),
		Name:       name,
		Type:       mimeType,
		Size:       int64(len(data)),
		StorageRef: ref,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.fileStore.CreateFile(ctx, file); err != nil {
		// Don't leave an orphaned blob behind.
		_ = s.blobStore.Delete(ctx, ref)
		return nil, fmt.Errorf("creating file record: %w", err)
	}

	logger.Debug("Uploaded %s (%s, %d bytes) as %s", name, mimeType, len(data), file.ID)
	return file, nil
}

// GetFile retrieves a file by ID.
func (s *LibraryService) GetFile(ctx context.Context, fileID string) (*domain.File, error) {
	return s.fileStore.GetFile(ctx, fileID)
}

// ListFiles returns all uploaded files.
func (s *LibraryService) ListFiles(ctx context.Context) ([]domain.File, error) {
	return s.fileStore.ListFiles(ctx)
}

// DeleteFile removes a file, its stored blob, and every dependent
// document and embedding.
func (s *LibraryService) DeleteFile(ctx context.Context, fileID string) error {
	file, err := s.fileStore.GetFile(ctx, fileID)
	if err != nil {
		return err
	}

	// The store cascades the delete to documents and embeddings.
	if err := s.fileStore.DeleteFile(ctx, fileID); err != nil {
		return err
	}

	if file.StorageRef != "" {
		if err := s.blobStore.Delete(ctx, file.StorageRef); err != nil {
			logger.Warn("File record deleted but blob %s remains: %v", file.StorageRef, err)
		}
	}

	logger.Debug("Deleted file %s and its documents", fileID)
	return nil
}

// ListDocuments returns all ingested documents.
func (s *LibraryService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// GetDocument retrieves a document by ID.
func (s *LibraryService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// GetDetails returns display metadata for a document.
func (s *LibraryService) GetDetails(ctx context.Context, documentID string) (*driving.DocumentDetails, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	embeddings, err := s.docStore.ListEmbeddingsForDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	return &driving.DocumentDetails{
		ID:             doc.ID,
		Name:           doc.Name,
		Type:           doc.Type,
		FileID:         doc.FileID,
		ContentLength:  len(doc.Content),
		EmbeddingCount: len(embeddings),
		CreatedAt:      doc.CreatedAt,
	}, nil
}

// detectMIMEType maps a filename to a MIME type, preferring the small
// set of types the extractors understand.
func detectMIMEType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".md", ".markdown":
		return "text/markdown"
	case ".txt":
		return "text/plain"
	}

	if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
		if parsed, _, err := mime.ParseMediaType(byExt); err == nil {
			return parsed
		}
	}
	return "application/octet-stream"
}
