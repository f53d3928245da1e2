package domain

import (
	"math"
	"sort"
)

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns a value in [-1, 1], where 1 means identical direction.
//
// Vectors of different lengths are treated as incomparable and score 0
// rather than erroring; the same applies to zero vectors. Callers that
// need strict dimension checking should validate lengths themselves.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float32
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB))))
}

// RankChunks scores every embedding against the query vector and returns
// the topK best matches sorted by similarity, highest first.
// A topK <= 0 returns all matches.
func RankChunks(query []float32, embeddings []Embedding, topK int) []RelevantChunk {
	results := make([]RelevantChunk, 0, len(embeddings))
	for i := range embeddings {
		results = append(results, RelevantChunk{
			Chunk:      embeddings[i].Chunk,
			Score:      CosineSimilarity(query, embeddings[i].Vector),
			DocumentID: embeddings[i].DocumentID,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > 0 && topK < len(results) {
		results = results[:topK]
	}

	return results
}
