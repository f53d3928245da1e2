// Package memory provides in-memory implementations of the storage ports.
// Used by service tests and as a throwaway backend.
package memory

import (
	"context"
	"sync"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
)

// Ensure Store implements the interfaces.
var (
	_ driven.FileStore     = (*Store)(nil)
	_ driven.DocumentStore = (*Store)(nil)
)

// Store is an in-memory implementation of the file and document stores.
// One instance backs both ports so cascade deletes see all three record
// kinds.
type Store struct {
	mu         sync.RWMutex
	files      map[string]domain.File
	documents  map[string]domain.Document
	embeddings map[string][]domain.Embedding // keyed by document ID
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		files:      make(map[string]domain.File),
		documents:  make(map[string]domain.Document),
		embeddings: make(map[string][]domain.Embedding),
	}
}

// CreateFile stores a new file record.
func (s *Store) CreateFile(_ context.Context, file *domain.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[file.ID] = *file
	return nil
}

// GetFile retrieves a file by ID.
func (s *Store) GetFile(_ context.Context, id string) (*domain.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	file, ok := s.files[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &file, nil
}

// ListFiles returns all file records.
func (s *Store) ListFiles(_ context.Context) ([]domain.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	files := make([]domain.File, 0, len(s.files))
	for id := range s.files {
		files = append(files, s.files[id])
	}
	return files, nil
}

// DeleteFile removes a file and cascades to its documents and embeddings.
func (s *Store) DeleteFile(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return domain.ErrNotFound
	}

	for docID, doc := range s.documents {
		if doc.FileID == id {
			delete(s.documents, docID)
			delete(s.embeddings, docID)
		}
	}
	delete(s.files, id)
	return nil
}

// CreateDocument stores a new document.
func (s *Store) CreateDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	return nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns all documents.
func (s *Store) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.documents))
	for id := range s.documents {
		docs = append(docs, s.documents[id])
	}
	return docs, nil
}

// StoreEmbedding appends one embedding row.
func (s *Store) StoreEmbedding(_ context.Context, emb *domain.Embedding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[emb.DocumentID]; !ok {
		return domain.ErrNotFound
	}
	s.embeddings[emb.DocumentID] = append(s.embeddings[emb.DocumentID], *emb)
	return nil
}

// ListEmbeddings returns all embeddings across all documents.
func (s *Store) ListEmbeddings(_ context.Context) ([]domain.Embedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []domain.Embedding
	for docID := range s.embeddings {
		all = append(all, s.embeddings[docID]...)
	}
	return all, nil
}

// ListEmbeddingsForDocument returns the embeddings owned by a document.
func (s *Store) ListEmbeddingsForDocument(_ context.Context, documentID string) ([]domain.Embedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	embs := s.embeddings[documentID]
	out := make([]domain.Embedding, len(embs))
	copy(out, embs)
	return out, nil
}
