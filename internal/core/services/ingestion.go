package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/parchment-labs/parchment-cli/internal/chunker"
	"github.com/parchment-labs/parchment-cli/internal/cleaner"
	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driving"
	"github.com/parchment-labs/parchment-cli/internal/logger"
)

// Ensure IngestionService implements the interface.
var _ driving.IngestionService = (*IngestionService)(nil)

const (
	// maxConcurrentEmbeds bounds the embedding fan-out.
	maxConcurrentEmbeds = 4

	// maxEmbedRetries is how many times a failed chunk embedding is retried
	// before it counts as failed.
	maxEmbedRetries = 2

	// embedRetryBackoff is the initial wait between retries; it doubles
	// per attempt.
	embedRetryBackoff = 250 * time.Millisecond
)

// IngestionService turns raw extracted text into a persisted document
// plus its chunk embeddings.
type IngestionService struct {
	fileStore  driven.FileStore
	docStore   driven.DocumentStore
	blobStore  driven.BlobStore
	extractors driven.ExtractorRegistry
	embedder   driven.EmbeddingService
	chunker    *chunker.Chunker
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(
	fileStore driven.FileStore,
	docStore driven.DocumentStore,
	blobStore driven.BlobStore,
	extractors driven.ExtractorRegistry,
	embedder driven.EmbeddingService,
	ch *chunker.Chunker,
) *IngestionService {
	if ch == nil {
		ch = chunker.New()
	}
	return &IngestionService{
		fileStore:  fileStore,
		docStore:   docStore,
		blobStore:  blobStore,
		extractors: extractors,
		embedder:   embedder,
		chunker:    ch,
	}
}

// IngestFile loads the stored blob for a file, extracts its text and
// runs Ingest on the result.
func (s *IngestionService) IngestFile(ctx context.Context, fileID string) (*domain.IngestionReport, error) {
	file, err := s.fileStore.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}

	data, err := s.blobStore.Read(ctx, file.StorageRef)
	if err != nil {
		return nil, fmt.Errorf("reading stored file %s: %w", fileID, err)
	}

	extractor, err := s.extractors.ForMIMEType(file.Type)
	if err != nil {
		return nil, err
	}

	text, err := extractor.Extract(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrExtraction, file.Name, err)
	}

	return s.Ingest(ctx, fileID, text)
}

// Ingest runs the pipeline on already-extracted text: clean, chunk,
// embed, persist, verify.
//
// Per-chunk embedding failures are tolerated and aggregated into the
// report; the run fails only when cleaning leaves nothing to process or
// no chunk at all produced a persisted embedding.
func (s *IngestionService) Ingest(ctx context.Context, fileID, rawText string) (*domain.IngestionReport, error) {
	logger.Section("Ingestion Pipeline")
	report := &domain.IngestionReport{Stage: domain.StageStarted}

	file, err := s.fileStore.GetFile(ctx, fileID)
	if err != nil {
		report.Stage = domain.StageFailed
		return report, err
	}

	report.Stage = domain.StageCleaning
	cleaned := cleaner.Clean(rawText)
	if cleaned == "" {
		report.Stage = domain.StageFailed
		return report, fmt.Errorf("%w: file %s", domain.ErrEmptyContent, fileID)
	}
	logger.Debug("Cleaned text: %d chars", len(cleaned))

	doc := &domain.Document{
		ID:        uuid.NewString(),
		Name:      file.Name,
		Type:      file.Type,
		Content:   cleaned,
		FileID:    file.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.docStore.CreateDocument(ctx, doc); err != nil {
		report.Stage = domain.StageFailed
		return report, fmt.Errorf("creating document: %w", err)
	}
	report.DocumentID = doc.ID

	report.Stage = domain.StageChunking
	chunks := s.chunker.Split(cleaned)
	logger.Debug("Split into %d chunks (size %d, overlap %d)",
		len(chunks), s.chunker.ChunkSize(), s.chunker.Overlap())

	report.Stage = domain.StageEmbeddingChunks
	var embedded, skipped, failed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmbeds)

	for i, chunk := range chunks {
		if chunker.TooShort(chunk) {
			skipped.Add(1)
			logger.Debug("Chunk %d skipped: too short", i)
			continue
		}

		g.Go(func() error {
			vector, err := s.embedWithRetry(gctx, chunk)
			if err != nil {
				// Only cancellation aborts the whole run; a chunk that
				// keeps failing is recorded and left behind.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				logger.Warn("Chunk %d failed to embed: %v", i, err)
				return nil
			}

			emb := &domain.Embedding{
				ID:         uuid.NewString(),
				DocumentID: doc.ID,
				Vector:     vector,
				Chunk:      chunk,
				CreatedAt:  time.Now().UTC(),
			}
			if err := s.docStore.StoreEmbedding(gctx, emb); err != nil {
				failed.Add(1)
				logger.Warn("Chunk %d failed to persist: %v", i, err)
				return nil
			}

			embedded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		report.Stage = domain.StageFailed
		report.Embedded = int(embedded.Load())
		report.Skipped = int(skipped.Load())
		report.Failed = int(failed.Load())
		return report, err
	}

	report.Embedded = int(embedded.Load())
	report.Skipped = int(skipped.Load())
	report.Failed = int(failed.Load())

	report.Stage = domain.StageVerifying
	if report.Embedded == 0 {
		report.Stage = domain.StageFailed
		return report, fmt.Errorf("%w: document %s", domain.ErrNoEmbeddings, doc.ID)
	}

	report.Stage = domain.StageCompleted
	logger.Info("Ingestion complete: %d embedded, %d skipped, %d failed",
		report.Embedded, report.Skipped, report.Failed)
	return report, nil
}

// embedWithRetry embeds one chunk, retrying transient failures with
// doubling backoff. Cancellation is never retried.
func (s *IngestionService) embedWithRetry(ctx context.Context, chunk string) ([]float32, error) {
	backoff := embedRetryBackoff

	var lastErr error
	for attempt := 0; attempt <= maxEmbedRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		vector, err := s.embedder.Embed(ctx, chunk)
		if err == nil {
			return vector, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingFailed, lastErr)
}
