package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driving"
	"github.com/parchment-labs/parchment-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// chunkSeparator joins retrieved chunks into one context block.
const chunkSeparator = "\n\n"

// QueryService answers natural-language questions, optionally grounded
// in ingested document content.
type QueryService struct {
	docStore driven.DocumentStore
	embedder driven.EmbeddingService
	llm      driven.LLMService
	prompts  driven.PromptStore
}

// NewQueryService creates a new query service.
func NewQueryService(
	docStore driven.DocumentStore,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	prompts driven.PromptStore,
) *QueryService {
	return &QueryService{
		docStore: docStore,
		embedder: embedder,
		llm:      llm,
		prompts:  prompts,
	}
}

// Answer synthesises an answer for the query.
//
// An explicit document ID supplies that document's whole content as
// context; otherwise a positive TopK retrieves the best-scoring stored
// chunks; with neither, the query goes to the provider bare.
func (s *QueryService) Answer(ctx context.Context, query string, opts driving.QueryOptions) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("%w: query is empty", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return "", fmt.Errorf("%w: no LLM provider configured", domain.ErrLLMUnavailable)
	}

	logger.Section("Query Pipeline")

	docContext, err := s.selectContext(ctx, query, opts)
	if err != nil {
		return "", err
	}

	prompt := query
	if docContext != "" {
		template, err := s.prompts.Load(driven.PromptAnswerWithContext)
		if err != nil {
			return "", fmt.Errorf("loading answer prompt: %w", err)
		}
		prompt = fmt.Sprintf(template, docContext, query)
	}
	logger.Debug("Prompt: %d chars (%d context)", len(prompt), len(docContext))

	answer, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return "", domain.ErrEmptyGeneration
	}

	return answer, nil
}

// selectContext resolves the document content the answer should be
// grounded in, or "" for a bare query.
func (s *QueryService) selectContext(ctx context.Context, query string, opts driving.QueryOptions) (string, error) {
	if opts.DocumentID != "" {
		doc, err := s.docStore.GetDocument(ctx, opts.DocumentID)
		if err != nil {
			return "", err
		}
		logger.Debug("Context: document %s (%d chars)", doc.ID, len(doc.Content))
		return doc.Content, nil
	}

	if opts.TopK > 0 {
		return s.retrieveContext(ctx, query, opts.TopK)
	}

	return "", nil
}

// retrieveContext embeds the query and concatenates the best-scoring
// stored chunks.
func (s *QueryService) retrieveContext(ctx context.Context, query string, topK int) (string, error) {
	if s.embedder == nil {
		return "", fmt.Errorf("%w: retrieval needs an embedding provider", domain.ErrEmbeddingUnavailable)
	}

	queryVector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embedding query: %w", err)
	}

	embeddings, err := s.docStore.ListEmbeddings(ctx)
	if err != nil {
		return "", fmt.Errorf("listing embeddings: %w", err)
	}
	if len(embeddings) == 0 {
		logger.Debug("No stored embeddings, answering without context")
		return "", nil
	}

	ranked := domain.RankChunks(queryVector, embeddings, topK)
	logger.Debug("Retrieved %d of %d chunks", len(ranked), len(embeddings))

	parts := make([]string, 0, len(ranked))
	for _, rc := range ranked {
		parts = append(parts, rc.Chunk)
	}
	return strings.Join(parts, chunkSeparator), nil
}
