package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbed_Deterministic(t *testing.T) {
	svc := NewEmbeddingService()
	ctx := context.Background()

	a, err := svc.Embed(ctx, "the quick brown fox")
	require.NoError(t, err)
	b, err := svc.Embed(ctx, "the quick brown fox")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEmbed_FixedLength(t *testing.T) {
	svc := NewEmbeddingService()
	ctx := context.Background()

	for _, text := range []string{"", "a", "short", string(make([]byte, 5000))} {
		vec, err := svc.Embed(ctx, text)
		require.NoError(t, err)
		assert.Len(t, vec, Dimensions)
	}
}

func TestEmbed_ComponentsBounded(t *testing.T) {
	svc := NewEmbeddingService()

	vec, err := svc.Embed(context.Background(), "Some reasonably long input, with punctuation! And 123 numbers.")
	require.NoError(t, err)

	for i, v := range vec {
		assert.GreaterOrEqual(t, v, float32(-1), "component %d", i)
		assert.LessOrEqual(t, v, float32(1), "component %d", i)
	}
}

func TestEmbed_DistinctInputsDiffer(t *testing.T) {
	svc := NewEmbeddingService()
	ctx := context.Background()

	a, err := svc.Embed(ctx, "alpha")
	require.NoError(t, err)
	b, err := svc.Embed(ctx, "omega")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEmbedBatch(t *testing.T) {
	svc := NewEmbeddingService()

	embeddings, err := svc.EmbedBatch(context.Background(), []string{"one", "two", "three"})
	require.NoError(t, err)
	require.Len(t, embeddings, 3)

	single, err := svc.Embed(context.Background(), "two")
	require.NoError(t, err)
	assert.Equal(t, single, embeddings[1])
}

func TestMetadata(t *testing.T) {
	svc := NewEmbeddingService()

	assert.Equal(t, Dimensions, svc.Dimensions())
	assert.Equal(t, ModelName, svc.ModelName())
	assert.NoError(t, svc.Ping(context.Background()))
	assert.NoError(t, svc.Close())
}
