package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file type with no registered extractor.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrEmptyContent indicates nothing was left to ingest after cleaning.
	ErrEmptyContent = errors.New("no text content to process")

	// ErrEmbeddingFailed indicates a single chunk could not be embedded.
	// Ingestion recovers from this locally; it is only aggregated into
	// the final failure count, never surfaced on its own.
	ErrEmbeddingFailed = errors.New("failed to generate embedding")

	// ErrNoEmbeddings indicates an ingestion produced no embeddings at all.
	// This is the terminal failure of the ingestion pipeline.
	ErrNoEmbeddings = errors.New("no embeddings were created for the document")

	// ErrExtraction indicates upstream text extraction failed.
	ErrExtraction = errors.New("text extraction failed")

	// Generative provider errors, each mapped from provider-specific
	// error text to a distinct user-facing category.

	// ErrUpstream indicates an unclassified provider API failure.
	ErrUpstream = errors.New("upstream provider error")

	// ErrUpstreamTimeout indicates a provider call exceeded its deadline.
	ErrUpstreamTimeout = errors.New("upstream provider timed out")

	// ErrInvalidCredentials indicates the provider rejected the API key.
	ErrInvalidCredentials = errors.New("invalid API credentials")

	// ErrQuotaExceeded indicates the provider quota was exhausted.
	ErrQuotaExceeded = errors.New("API quota exceeded")

	// ErrModelUnavailable indicates the requested model is missing or
	// inaccessible with the supplied credentials.
	ErrModelUnavailable = errors.New("model not found or unavailable")

	// ErrEmptyGeneration indicates the provider returned no usable text.
	ErrEmptyGeneration = errors.New("empty response from provider")

	// ErrEmbeddingUnavailable indicates the embedding service could not be
	// created or reached.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the LLM service could not be created or
	// reached.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
