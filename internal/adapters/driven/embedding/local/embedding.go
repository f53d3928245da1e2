// Package local provides a deterministic placeholder embedding service.
//
// The vectors it produces carry NO semantic meaning: the algorithm folds
// character codes into a fixed-length vector through a running sinusoidal
// average per position. It exists so the pipeline can run end to end
// without external credentials, and so tests are reproducible. Any serious
// deployment should swap in a real embedding provider behind the same port.
package local

import (
	"context"
	"math"

	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Dimensions is the fixed vector length of the placeholder.
const Dimensions = 32

// ModelName identifies the placeholder in logs and reports.
const ModelName = "local-sinusoidal-32"

// EmbeddingService generates placeholder embeddings locally.
type EmbeddingService struct{}

// NewEmbeddingService creates a new placeholder embedding service.
func NewEmbeddingService() *EmbeddingService {
	return &EmbeddingService{}
}

// Embed generates the placeholder vector for the given text.
// Identical input always yields an identical vector; every component
// stays within [-1, 1].
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, Dimensions)

	for i, r := range []rune(text) {
		pos := i % Dimensions
		vector[pos] = (vector[pos] + float32(math.Sin(float64(r)))) / 2
	}

	return vector, nil
}

// EmbedBatch generates embeddings for multiple texts.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embedding, err := s.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = embedding
	}
	return embeddings, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return Dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return ModelName
}

// Ping always succeeds; there is nothing remote to reach.
func (s *EmbeddingService) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}
