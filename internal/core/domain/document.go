package domain

import "time"

// Document represents the cleaned text of a successfully ingested file.
// A document is created once per ingestion and owns zero or more embeddings.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the human-readable name, inherited from the owning file.
	Name string

	// Type is the MIME type of the owning file.
	Type string

	// Content is the full cleaned text before chunking.
	Content string

	// FileID links to the owning File.
	FileID string

	// CreatedAt is when the document was created.
	CreatedAt time.Time
}

// Embedding is one chunk of a document's text paired with its vector
// representation. Embeddings are never mutated; they are deleted together
// with their owning document.
type Embedding struct {
	// ID is the unique identifier for the embedding.
	ID string

	// DocumentID links to the owning Document.
	DocumentID string

	// Vector is the fixed-length numeric representation of the chunk.
	// Its length is constant for all embeddings produced by the same
	// provider configuration.
	Vector []float32

	// Chunk is the source text the vector was computed from.
	Chunk string

	// CreatedAt is when the embedding was stored.
	CreatedAt time.Time
}

// RelevantChunk is a scored retrieval candidate for a query.
type RelevantChunk struct {
	// Chunk is the matched chunk text.
	Chunk string

	// Score is the cosine similarity against the query vector.
	Score float32

	// DocumentID is the document the chunk belongs to.
	DocumentID string
}
