package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/parchment-labs/parchment-cli/internal/core/domain"
	"github.com/parchment-labs/parchment-cli/internal/core/ports/driven"
)

// mockEmbedder is a scriptable embedding service. failOn marks substrings
// whose chunks always fail; failFirst makes every chunk fail that many
// times before succeeding.
type mockEmbedder struct {
	mu        sync.Mutex
	calls     int
	attempts  map[string]int
	failOn    []string
	failFirst int
	embedErr  error
	vector    []float32
}

var _ driven.EmbeddingService = (*mockEmbedder)(nil)

func newMockEmbedder() *mockEmbedder {
	return &mockEmbedder{
		attempts: make(map[string]int),
		vector:   []float32{1, 0, 0},
		embedErr: domain.ErrUpstream,
	}
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.attempts[text]++

	for _, marker := range m.failOn {
		if strings.Contains(text, marker) {
			return nil, m.embedErr
		}
	}
	if m.attempts[text] <= m.failFirst {
		return nil, m.embedErr
	}

	vector := make([]float32, len(m.vector))
	copy(vector, m.vector)
	return vector, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vector, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, vector)
	}
	return vectors, nil
}

func (m *mockEmbedder) Dimensions() int              { return len(m.vector) }
func (m *mockEmbedder) ModelName() string            { return "mock-embedder" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

func (m *mockEmbedder) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockLLM records the last prompt and replies with a fixed answer.
type mockLLM struct {
	mu         sync.Mutex
	lastPrompt string
	answer     string
	err        error
}

var _ driven.LLMService = (*mockLLM)(nil)

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

func (m *mockLLM) prompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}

// memoryBlobs is an in-memory BlobStore.
type memoryBlobs struct {
	mu    sync.Mutex
	blobs map[string][]byte
	next  int
}

var _ driven.BlobStore = (*memoryBlobs)(nil)

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{blobs: make(map[string][]byte)}
}

func (b *memoryBlobs) Save(_ context.Context, name string, data []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	ref := fmt.Sprintf("%s-%d", name, b.next)
	b.blobs[ref] = data
	return ref, nil
}

func (b *memoryBlobs) Read(_ context.Context, ref string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.blobs[ref]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (b *memoryBlobs) Delete(_ context.Context, ref string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.blobs, ref)
	return nil
}

func (b *memoryBlobs) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.blobs)
}

// staticPrompts serves one template for every name.
type staticPrompts struct {
	template string
}

var _ driven.PromptStore = (*staticPrompts)(nil)

func (p *staticPrompts) Load(_ string) (string, error) { return p.template, nil }
func (p *staticPrompts) Reload()                       {}
